package mtree

import (
	"math/bits"

	"github.com/gordian-engine/mtree/mthash"
)

// leafRow hashes every input item into the level-0 row of leaf digests,
// preserving input order.
// The row is backed by a single allocation.
func leafRow(items [][]byte, h mthash.Hasher) [][]byte {
	sz := h.Size()

	mem := make([]byte, len(items)*sz)
	row := make([][]byte, len(items))
	for i, item := range items {
		row[i] = mem[i*sz : (i+1)*sz]
		h.Leaf(item, row[i][:0])
	}

	return row
}

// parentRow reduces one level to the next by pairing consecutive digests
// and hashing each pair, left then right.
// An odd-length row pairs its last digest with itself.
func parentRow(row [][]byte, h mthash.Hasher) [][]byte {
	n := (len(row) + 1) / 2
	sz := h.Size()

	mem := make([]byte, n*sz)
	next := make([][]byte, n)
	for i := range next {
		next[i] = mem[i*sz : (i+1)*sz]

		left := row[2*i]
		right := left
		if 2*i+1 < len(row) {
			right = row[2*i+1]
		}

		h.Pair(left, right, next[i][:0])
	}

	return next
}

// buildLevels runs the pairing reduction to completion,
// returning every level from the given leaf row (index 0)
// up to the single-digest root level.
// A one-digest row is already complete and yields a single level.
func buildLevels(row [][]byte, h mthash.Hasher) [][][]byte {
	levels := [][][]byte{row}
	for len(levels[len(levels)-1]) > 1 {
		levels = append(levels, parentRow(levels[len(levels)-1], h))
	}

	return levels
}

// treeHeight reports the number of pairing levels
// above a leaf row of the given length, ceil(log2(leafCount)).
// leafCount must be positive.
func treeHeight(leafCount int) int {
	return bits.Len(uint(leafCount - 1))
}

// proveFromLevels collects the sibling path for the leaf at idx,
// walking the levels from the leaf row up to (but excluding) the root.
// Sibling digests are copied so the proof does not alias tree storage.
// idx must be in range for the leaf row.
func proveFromLevels(levels [][][]byte, idx int) Proof {
	proof := make(Proof, 0, len(levels)-1)

	i := idx
	for _, row := range levels[:len(levels)-1] {
		if i&1 == 1 {
			proof = append(proof, ProofStep{
				Sibling: cloneDigest(row[i-1]),
				Side:    Left,
			})
		} else {
			sib := i + 1
			if sib == len(row) {
				// Duplicated tail node: its pairing partner is itself.
				sib = i
			}
			proof = append(proof, ProofStep{
				Sibling: cloneDigest(row[sib]),
				Side:    Right,
			})
		}

		i >>= 1
	}

	return proof
}

func cloneDigest(d []byte) []byte {
	out := make([]byte, len(d))
	copy(out, d)
	return out
}
