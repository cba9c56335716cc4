package mtree

import (
	"bytes"

	"github.com/gordian-engine/mtree/mthash"
)

// CompactTree is the storage variant that retains only
// the leaf digests and the root digest.
// Proof requests re-run the pairing reduction from the leaf row,
// keeping the intermediate levels only for the duration of the call.
//
// Compared to [FullTree] this trades O(n) recomputation per proof
// for not holding the interior node levels in memory.
// Both variants produce identical roots and proofs.
type CompactTree struct {
	leaves [][]byte
	root   []byte

	hasher mthash.Hasher
}

var _ Tree = (*CompactTree)(nil)

// NewCompact builds a [CompactTree] from the raw items, in order.
// It returns [ErrEmptyInput] if items is empty.
func NewCompact(items [][]byte, h mthash.Hasher) (*CompactTree, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}

	leaves := leafRow(items, h)

	row := leaves
	for len(row) > 1 {
		row = parentRow(row, h)
	}

	return &CompactTree{
		leaves: leaves,
		root:   row[0],
		hasher: h,
	}, nil
}

func (t *CompactTree) Root() []byte {
	return cloneDigest(t.root)
}

func (t *CompactTree) LeafCount() int {
	return len(t.leaves)
}

func (t *CompactTree) Height() int {
	return treeHeight(len(t.leaves))
}

func (t *CompactTree) Hasher() mthash.Hasher {
	return t.hasher
}

func (t *CompactTree) Leaf(i int) (Leaf, error) {
	if i < 0 || i >= len(t.leaves) {
		return Leaf{}, LeafNotFoundError{Index: i, LeafCount: len(t.leaves)}
	}

	return Leaf{Index: i, Value: cloneDigest(t.leaves[i])}, nil
}

func (t *CompactTree) Prove(i int) (Proof, error) {
	if i < 0 || i >= len(t.leaves) {
		return nil, LeafNotFoundError{Index: i, LeafCount: len(t.leaves)}
	}

	// Rebuild the interior levels transiently;
	// they are discarded as soon as the sibling path is copied out.
	return proveFromLevels(buildLevels(t.leaves, t.hasher), i), nil
}

func (t *CompactTree) ContainsHash(digest []byte) (int, Proof, bool) {
	for i, leaf := range t.leaves {
		if bytes.Equal(leaf, digest) {
			proof, _ := t.Prove(i)
			return i, proof, true
		}
	}

	return 0, nil, false
}

func (t *CompactTree) VerifyProof(leafDigest []byte, index int, proof Proof) bool {
	if len(proof) != t.Height() {
		return false
	}

	return Verify(t.hasher, leafDigest, index, proof, t.root)
}
