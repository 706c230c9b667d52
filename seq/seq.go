// Package seq defines the read-only, random-access Sequence capability and a few containers satisfying it.
package seq

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("index out of range")

// Sequence is an ordered, finite, random-access collection.
// Prefix returns the first min(n, Len()) elements; a negative n yields an empty sequence.
type Sequence[T any] interface {
	Len() int
	At(i int) (T, error)
	Prefix(n int) Sequence[T]
}

func outOfRange(i, n int) error {
	return fmt.Errorf("index %d (len %d): %w", i, n, ErrOutOfRange)
}

func clamp(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}

// Values copies the elements of s into a new slice. It stops at the first failing access.
func Values[T any](s Sequence[T]) []T {
	n := s.Len()
	ts := make([]T, 0, n)
	for i := 0; i < n; i++ {
		t, err := s.At(i)
		if err != nil {
			break
		}
		ts = append(ts, t)
	}
	return ts
}
