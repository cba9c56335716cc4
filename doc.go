// Package mtree builds and verifies binary Merkle trees
// over an in-memory sequence of data items,
// parameterized by a pluggable hashing capability
// (the Hasher interface in the mthash package).
//
// A tree commits to its dataset through a single root digest.
// A membership proof for any leaf is the ordered path of sibling digests
// from that leaf up to the root,
// and [Verify] replays such a proof against the root digest alone.
//
// Two storage variants share one public surface:
// [FullTree] materializes every level for cheap proof derivation,
// and [CompactTree] retains only the leaf digests and the root,
// re-running the pairing reduction whenever a proof is requested.
//
// When a level has an odd number of digests,
// the last digest is paired with itself to keep the pairing binary.
// That duplication policy is fixed:
// it is applied identically by both variants and by proof verification.
package mtree
