package mtree

import (
	"bytes"

	"github.com/gordian-engine/mtree/mthash"
)

// FullTree is the storage variant that materializes every level
// produced by the pairing reduction.
// Any node is addressable without recomputation,
// so proof derivation is an O(log n) walk after the one-time build.
//
// The tree exclusively owns its node storage.
// Accessors return copies of digests, never views into that storage,
// and nothing mutates the tree after construction.
type FullTree struct {
	// levels[0] is the leaf row; the last level holds only the root.
	// Children of the node at (level l, position i)
	// are at (l-1, 2i) and (l-1, 2i+1),
	// with the second clamped to the row end for a duplicated tail.
	levels [][][]byte

	hasher mthash.Hasher
}

var _ Tree = (*FullTree)(nil)

// NewFull builds a [FullTree] from the raw items, in order.
// It returns [ErrEmptyInput] if items is empty;
// no other failure is possible for a well-formed hasher.
func NewFull(items [][]byte, h mthash.Hasher) (*FullTree, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}

	return &FullTree{
		levels: buildLevels(leafRow(items, h), h),
		hasher: h,
	}, nil
}

func (t *FullTree) Root() []byte {
	return cloneDigest(t.levels[len(t.levels)-1][0])
}

func (t *FullTree) LeafCount() int {
	return len(t.levels[0])
}

func (t *FullTree) Height() int {
	return len(t.levels) - 1
}

func (t *FullTree) Hasher() mthash.Hasher {
	return t.hasher
}

func (t *FullTree) Leaf(i int) (Leaf, error) {
	if i < 0 || i >= len(t.levels[0]) {
		return Leaf{}, LeafNotFoundError{Index: i, LeafCount: len(t.levels[0])}
	}

	return Leaf{Index: i, Value: cloneDigest(t.levels[0][i])}, nil
}

func (t *FullTree) Prove(i int) (Proof, error) {
	if i < 0 || i >= len(t.levels[0]) {
		return nil, LeafNotFoundError{Index: i, LeafCount: len(t.levels[0])}
	}

	return proveFromLevels(t.levels, i), nil
}

func (t *FullTree) ContainsHash(digest []byte) (int, Proof, bool) {
	for i, leaf := range t.levels[0] {
		if bytes.Equal(leaf, digest) {
			return i, proveFromLevels(t.levels, i), true
		}
	}

	return 0, nil, false
}

func (t *FullTree) VerifyProof(leafDigest []byte, index int, proof Proof) bool {
	if len(proof) != t.Height() {
		return false
	}

	return Verify(t.hasher, leafDigest, index, proof, t.levels[len(t.levels)-1][0])
}
