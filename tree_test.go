package mtree_test

import (
	"hash/fnv"
	"io"
	"testing"

	"github.com/gordian-engine/mtree"
	"github.com/gordian-engine/mtree/mthash"
	"github.com/stretchr/testify/require"
)

// The "_simplified_" tests in this package use the fnv32Hasher,
// which makes expected hashes easy to compose inline.
// The scenario tests use the real driver packages.

type fnv32Hasher struct{}

func (fnv32Hasher) Size() int {
	return 4
}

func (fnv32Hasher) Leaf(in []byte, dst []byte) {
	h := fnv.New32()
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (fnv32Hasher) Pair(left, right []byte, dst []byte) {
	h := fnv.New32()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}

func fnv32Hash(in string) []byte {
	h := fnv.New32()
	_, _ = io.WriteString(h, in)
	return h.Sum(nil)
}

func fnv32Pair(left, right []byte) []byte {
	h := fnv.New32()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(nil)
}

// byteItems converts string literals for the constructors.
func byteItems(items ...string) [][]byte {
	out := make([][]byte, len(items))
	for i, s := range items {
		out[i] = []byte(s)
	}
	return out
}

// treeConstructors is used by tests that must hold
// for both storage variants.
var treeConstructors = map[string]func([][]byte, mthash.Hasher) (mtree.Tree, error){
	"full": func(items [][]byte, h mthash.Hasher) (mtree.Tree, error) {
		return mtree.NewFull(items, h)
	},
	"compact": func(items [][]byte, h mthash.Hasher) (mtree.Tree, error) {
		return mtree.NewCompact(items, h)
	},
}

func TestTree_emptyInput(t *testing.T) {
	t.Parallel()

	for name, newTree := range treeConstructors {
		newTree := newTree
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := newTree(nil, fnv32Hasher{})
			require.ErrorIs(t, err, mtree.ErrEmptyInput)

			_, err = newTree([][]byte{}, fnv32Hasher{})
			require.ErrorIs(t, err, mtree.ErrEmptyInput)
		})
	}
}

func TestTree_singleLeaf(t *testing.T) {
	t.Parallel()

	for name, newTree := range treeConstructors {
		newTree := newTree
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree, err := newTree(byteItems("only"), fnv32Hasher{})
			require.NoError(t, err)

			// No pairing happens for a single item:
			// the root is the leaf digest itself and the height is zero.
			require.Equal(t, fnv32Hash("only"), tree.Root())
			require.Equal(t, 1, tree.LeafCount())
			require.Zero(t, tree.Height())

			proof, err := tree.Prove(0)
			require.NoError(t, err)
			require.Empty(t, proof)

			require.True(t, tree.VerifyProof(fnv32Hash("only"), 0, proof))
		})
	}
}

func TestTree_determinism(t *testing.T) {
	t.Parallel()

	for name, newTree := range treeConstructors {
		newTree := newTree
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			items := byteItems("a", "b", "c", "d", "e", "f", "g")

			t1, err := newTree(items, fnv32Hasher{})
			require.NoError(t, err)

			t2, err := newTree(items, fnv32Hasher{})
			require.NoError(t, err)

			require.Equal(t, t1.Root(), t2.Root())
		})
	}
}

func TestTree_leafLookup(t *testing.T) {
	t.Parallel()

	for name, newTree := range treeConstructors {
		newTree := newTree
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree, err := newTree(byteItems("hello", "how", "are", "you"), fnv32Hasher{})
			require.NoError(t, err)

			leaf, err := tree.Leaf(2)
			require.NoError(t, err)
			require.Equal(t, 2, leaf.Index)
			require.Equal(t, fnv32Hash("are"), leaf.Value)

			// Only indices 0-3 exist.
			_, err = tree.Leaf(4)
			var notFound mtree.LeafNotFoundError
			require.ErrorAs(t, err, &notFound)
			require.Equal(t, 4, notFound.Index)
			require.Equal(t, 4, notFound.LeafCount)

			_, err = tree.Leaf(-1)
			require.ErrorAs(t, err, &notFound)
		})
	}
}

func TestTree_proveOutOfRange(t *testing.T) {
	t.Parallel()

	for name, newTree := range treeConstructors {
		newTree := newTree
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree, err := newTree(byteItems("a", "b", "c"), fnv32Hasher{})
			require.NoError(t, err)

			_, err = tree.Prove(3)
			var notFound mtree.LeafNotFoundError
			require.ErrorAs(t, err, &notFound)
		})
	}
}

func TestTree_variantEquivalence(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 9; n++ {
		items := make([][]byte, n)
		for i := range items {
			items[i] = []byte{byte(n), byte(i)}
		}

		full, err := mtree.NewFull(items, fnv32Hasher{})
		require.NoError(t, err)

		compact, err := mtree.NewCompact(items, fnv32Hasher{})
		require.NoError(t, err)

		require.Equal(t, full.Root(), compact.Root(), "roots differ at %d leaves", n)
		require.Equal(t, full.Height(), compact.Height(), "heights differ at %d leaves", n)

		for i := 0; i < n; i++ {
			fp, err := full.Prove(i)
			require.NoError(t, err)

			cp, err := compact.Prove(i)
			require.NoError(t, err)

			require.Equal(t, fp, cp, "proofs differ at %d leaves, index %d", n, i)
		}
	}
}

func TestTree_rootIsACopy(t *testing.T) {
	t.Parallel()

	for name, newTree := range treeConstructors {
		newTree := newTree
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree, err := newTree(byteItems("a", "b"), fnv32Hasher{})
			require.NoError(t, err)

			root := tree.Root()
			for i := range root {
				root[i] ^= 0xff
			}

			require.Equal(t, fnv32Pair(fnv32Hash("a"), fnv32Hash("b")), tree.Root())
		})
	}
}
