package mtblake3_test

import (
	"testing"

	"github.com/gordian-engine/mtree/mthash"
	"github.com/gordian-engine/mtree/mthash/mtblake3"
	"github.com/gordian-engine/mtree/mthash/mthashtest"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	mthashtest.TestHasherCompliance(t, func() mthash.Hasher {
		return mtblake3.Hasher{}
	})
}

func TestMatchesReferenceImplementation(t *testing.T) {
	t.Parallel()

	h := mtblake3.Hasher{}

	leaf := make([]byte, mtblake3.HashSize)
	h.Leaf([]byte("hello"), leaf[:0])

	exp := blake3.Sum256([]byte("hello"))
	require.Equal(t, exp[:], leaf)
}
