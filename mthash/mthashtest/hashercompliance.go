package mthashtest

import (
	"testing"

	"github.com/gordian-engine/mtree/mthash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() mthash.Hasher

// TestHasherCompliance asserts the behavior that the tree packages
// require from any [mthash.Hasher] implementation.
// Every driver package should call this from its own tests.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("size is positive and stable", func(t *testing.T) {
		t.Parallel()

		h := f()

		sz := h.Size()
		require.Positive(t, sz)
		require.Equal(t, sz, h.Size())
	})

	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst02[:0])

		require.Equal(t, dst01, dst02)
	})

	t.Run("leaf respects input", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("input_1"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("input_2"), dst02[:0])

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("pair is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		left := make([]byte, sz)
		h.Leaf([]byte("left"), left[:0])
		right := make([]byte, sz)
		h.Leaf([]byte("right"), right[:0])

		dst01 := make([]byte, sz)
		h.Pair(left, right, dst01[:0])

		dst02 := make([]byte, sz)
		h.Pair(left, right, dst02[:0])

		require.Equal(t, dst01, dst02)
	})

	t.Run("pair is order-sensitive", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		left := make([]byte, sz)
		h.Leaf([]byte("left"), left[:0])
		right := make([]byte, sz)
		h.Leaf([]byte("right"), right[:0])

		lr := make([]byte, sz)
		h.Pair(left, right, lr[:0])

		rl := make([]byte, sz)
		h.Pair(right, left, rl[:0])

		require.NotEqual(t, lr, rl)
	})

	t.Run("appends exactly size bytes to dst", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		// Extra capacity beyond Size;
		// the digest must land in the first sz bytes and go no further.
		buf := make([]byte, 2*sz)
		for i := range buf {
			buf[i] = 0xa5
		}
		h.Leaf([]byte("bounded"), buf[:0])

		want := make([]byte, sz)
		h.Leaf([]byte("bounded"), want[:0])

		require.Equal(t, want, buf[:sz])
		for _, b := range buf[sz:] {
			require.Equal(t, byte(0xa5), b)
		}
	})
}
