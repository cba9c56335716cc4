package mtblake2b

import (
	"golang.org/x/crypto/blake2b"
)

const HashSize = blake2b.Size

// Hasher is an [mthash.Hasher] backed by unkeyed BLAKE2b-512 digests.
type Hasher struct{}

func (Hasher) Size() int {
	return HashSize
}

func (Hasher) Leaf(in []byte, dst []byte) {
	h, err := blake2b.New512(nil)
	if err != nil {
		// New512 only fails for oversized keys.
		panic(err)
	}
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (Hasher) Pair(left, right []byte, dst []byte) {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}
