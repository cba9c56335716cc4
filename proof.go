package mtree

import (
	"bytes"

	"github.com/gordian-engine/mtree/mthash"
)

// Side indicates which side of a pairing a proof sibling sits on.
type Side uint8

const (
	// Left means the sibling is the left input to the pair hash.
	Left Side = iota

	// Right means the sibling is the right input to the pair hash.
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// ProofStep is one entry of a membership proof:
// a sibling digest and the side of the pairing it occupies.
type ProofStep struct {
	Sibling []byte
	Side    Side
}

// Proof is the ordered sibling path from a leaf up to the root,
// leaf level first.
// Its length equals the height of the tree it was derived from;
// a single-leaf tree yields an empty proof.
type Proof []ProofStep

// Verify replays the proof from the claimed leaf digest
// and reports whether the reconstructed digest equals root.
//
// Verify is a pure function of its inputs and consults no tree:
// a verifier that only holds the root digest can run it.
// The index is cross-checked against the sides embedded in the proof,
// so a proof replayed at the wrong position fails
// rather than producing an undefined result.
//
// The hasher must be the same capability the tree was built with;
// mixing hashers yields false, never a panic.
func Verify(h mthash.Hasher, leafDigest []byte, index int, proof Proof, root []byte) bool {
	sz := h.Size()
	if len(leafDigest) != sz || len(root) != sz {
		return false
	}
	if index < 0 {
		return false
	}

	// The proof must account for every set bit of the index:
	// a leaf at index i can only exist in a tree of height >= bits.Len(i).
	if uint(index)>>uint(len(proof)) != 0 {
		return false
	}

	cur := make([]byte, sz)
	copy(cur, leafDigest)
	next := make([]byte, sz)

	for k, step := range proof {
		if len(step.Sibling) != sz {
			return false
		}

		// At level k the leaf's ancestor sits at position index>>k.
		// An odd position pairs with its left neighbor,
		// an even position with its right
		// (or with itself when it is the duplicated tail).
		siblingOnLeft := (index>>uint(k))&1 == 1
		switch step.Side {
		case Left:
			if !siblingOnLeft {
				return false
			}
			h.Pair(step.Sibling, cur, next[:0])
		case Right:
			if siblingOnLeft {
				return false
			}
			h.Pair(cur, step.Sibling, next[:0])
		default:
			return false
		}

		cur, next = next, cur
	}

	return bytes.Equal(cur, root)
}
