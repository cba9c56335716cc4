package mtblake3

import (
	"github.com/zeebo/blake3"
)

const HashSize = 32

// Hasher is an [mthash.Hasher] backed by BLAKE3 digests
// truncated to the default 256-bit output.
type Hasher struct{}

func (Hasher) Size() int {
	return HashSize
}

func (Hasher) Leaf(in []byte, dst []byte) {
	h := blake3.New()
	_, _ = h.Write(in)
	_ = h.Sum(dst)
}

func (Hasher) Pair(left, right []byte, dst []byte) {
	h := blake3.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	_ = h.Sum(dst)
}
