package mtree

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by [NewFull] and [NewCompact]
// when called with zero items.
// An empty dataset has no meaningful root digest.
var ErrEmptyInput = errors.New("cannot build a tree from an empty input sequence")

// LeafNotFoundError is returned from leaf lookups and proof generation
// when the requested index does not refer to a leaf.
type LeafNotFoundError struct {
	Index     int
	LeafCount int
}

func (e LeafNotFoundError) Error() string {
	return fmt.Sprintf(
		"no leaf at index %d; index must be in range [0, %d)",
		e.Index, e.LeafCount,
	)
}
