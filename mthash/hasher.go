package mthash

// Hasher is the user-defined capability for hashing leaves and pairs of nodes.
// The tree passes raw leaf data to the Leaf method to create a leaf digest,
// and it passes two digests to the Pair method to create a parent digest.
//
// To be allocation-efficient, the Hasher implementation
// must append its digest output to dst, instead of creating a new byte slice.
// The caller guarantees dst has capacity for Size bytes,
// and the Hasher must not retain references to the dst slice.
//
// Pair must hash the concatenation of left followed by right,
// in that fixed order, so that independently written implementations
// derive interoperable digests.
// Both methods must be deterministic,
// and they must be safe to call concurrently.
type Hasher interface {
	// Size reports the digest length in bytes.
	// It must be constant for a given Hasher instance.
	Size() int

	Leaf(in []byte, dst []byte)
	Pair(left, right []byte, dst []byte)
}
