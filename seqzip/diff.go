package seqzip

import (
	"fmt"

	"github.com/r3labs/diff/v3"
)

// Diff explains how a and b differ under Equal: it diffs their own-length prefixes.
// The changelog is empty iff the prefixes are deeply equal.
func Diff[T any](a, b *SequenceZip[T]) (diff.Changelog, error) {
	cl, err := diff.Diff(a.Prefixes(), b.Prefixes(), diff.SliceOrdering(true))
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	return cl, nil
}
