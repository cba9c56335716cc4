package mtree

import (
	"github.com/gordian-engine/mtree/mthash"
)

// Leaf is the digest of one input item
// together with the item's position in the input sequence.
// The position is assigned at construction time and never changes.
type Leaf struct {
	Index int

	// Value is a copy of the leaf digest,
	// so callers may retain or modify it freely.
	Value []byte
}

// Tree is the common read surface of [FullTree] and [CompactTree].
// Both variants produce identical roots and identical proofs
// for the same input and hasher,
// so callers can swap one for the other without code changes.
//
// A Tree is immutable after construction;
// all methods are safe to call concurrently.
type Tree interface {
	// Root returns a copy of the root digest.
	Root() []byte

	// LeafCount reports the number of input items the tree was built from.
	LeafCount() int

	// Height reports the number of pairing levels above the leaves.
	// A single-leaf tree has height zero.
	Height() int

	// Leaf returns the leaf at the given index,
	// or a [LeafNotFoundError] if the index is out of range.
	Leaf(i int) (Leaf, error)

	// Prove returns the membership proof for the leaf at the given index,
	// or a [LeafNotFoundError] if the index is out of range.
	Prove(i int) (Proof, error)

	// ContainsHash scans the leaves in ascending index order
	// for one whose digest equals the target,
	// returning the lowest matching index and its proof.
	// The reported bool is false if no leaf matches.
	ContainsHash(digest []byte) (int, Proof, bool)

	// VerifyProof replays the proof against this tree's root.
	// It rejects proofs whose length differs from the tree height.
	VerifyProof(leafDigest []byte, index int, proof Proof) bool

	// Hasher returns the hashing capability the tree was built with.
	Hasher() mthash.Hasher
}
