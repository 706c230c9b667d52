// Package seqzip presents a fixed set of sequences as one sequence of tuples.
// The i-th tuple holds the i-th element of every input; the length is the shortest input's length.
package seqzip

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/mazzegi/seqzip/mathx"
	"github.com/mazzegi/seqzip/seq"
	"github.com/mazzegi/seqzip/slicesx"
)

var ErrNoSequences = errors.New("no sequences")

const typeName = "SequenceZip"

// SequenceZip is a read-only view. It never caches: length and elements always reflect the current state of its inputs.
// Use T = any together with seq.Erase to zip sequences of different element types.
// The zero value has no inputs and is not usable; construct views with New.
type SequenceZip[T any] struct {
	seqs []seq.Sequence[T]
}

func New[T any](seqs ...seq.Sequence[T]) (*SequenceZip[T], error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}
	z := &SequenceZip[T]{
		seqs: make([]seq.Sequence[T], len(seqs)),
	}
	copy(z.seqs, seqs)
	return z, nil
}

func MustNew[T any](seqs ...seq.Sequence[T]) *SequenceZip[T] {
	z, err := New(seqs...)
	if err != nil {
		panic(fmt.Sprintf("new sequence-zip: %v", err))
	}
	return z
}

// Sequences returns the inputs in construction order. The returned slice is a copy.
func (z *SequenceZip[T]) Sequences() []seq.Sequence[T] {
	seqs := make([]seq.Sequence[T], len(z.seqs))
	copy(seqs, z.seqs)
	return seqs
}

func (z *SequenceZip[T]) Len() int {
	lens := slicesx.Map(z.seqs, func(s seq.Sequence[T]) int {
		return s.Len()
	})
	n, ok := mathx.MinOf(lens...)
	if !ok {
		panic(fmt.Sprintf("sequence-zip len: %v", ErrNoSequences))
	}
	return n
}

// At returns the tuple at index i. A negative i is shifted by Len() once.
// Bounds are left to the inputs; an error names the first input that rejected the index.
func (z *SequenceZip[T]) At(i int) ([]T, error) {
	if i < 0 {
		i = mathx.Normalize(i, z.Len())
	}
	return slicesx.MapErr(z.seqs, func(k int, s seq.Sequence[T]) (T, error) {
		t, err := s.At(i)
		if err != nil {
			return t, fmt.Errorf("sequence #%d: %w", k, err)
		}
		return t, nil
	})
}

// All yields the tuples for 0 <= i < Len(), with Len() taken once at the start.
// Iteration stops at the first failing access.
func (z *SequenceZip[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		n := z.Len()
		for i := 0; i < n; i++ {
			ts, err := z.At(i)
			if err != nil {
				return
			}
			if !yield(i, ts) {
				return
			}
		}
	}
}

func (z *SequenceZip[T]) Tuples() ([][]T, error) {
	n := z.Len()
	tss := make([][]T, 0, n)
	for i := 0; i < n; i++ {
		ts, err := z.At(i)
		if err != nil {
			return nil, fmt.Errorf("tuple %d: %w", i, err)
		}
		tss = append(tss, ts)
	}
	return tss, nil
}

// Prefixes returns every input truncated to this view's own length.
func (z *SequenceZip[T]) Prefixes() [][]T {
	return slicesx.Map(z.prefixSeqs(), seq.Values[T])
}

func (z *SequenceZip[T]) prefixSeqs() []seq.Sequence[T] {
	n := z.Len()
	return slicesx.Map(z.seqs, func(s seq.Sequence[T]) seq.Sequence[T] {
		return s.Prefix(n)
	})
}

// EqualFunc compares the inputs of z, each truncated to z.Len(), with the inputs of o, each truncated to o.Len().
// Views over a different number of inputs are never equal.
func (z *SequenceZip[T]) EqualFunc(o *SequenceZip[T], eq func(t1, t2 T) bool) bool {
	if z == o {
		return true
	}
	if z == nil || o == nil {
		return false
	}
	if len(z.seqs) != len(o.seqs) {
		return false
	}
	zps, ops := z.prefixSeqs(), o.prefixSeqs()
	for k := range zps {
		if !seq.EqualFunc(zps[k], ops[k], eq) {
			return false
		}
	}
	return true
}

// Equal is EqualFunc using ==.
func Equal[T comparable](a, b *SequenceZip[T]) bool {
	return a.EqualFunc(b, func(t1, t2 T) bool {
		return t1 == t2
	})
}

func (z *SequenceZip[T]) String() string {
	return typeName + "(" + strings.Join(slicesx.Map(z.seqs, seq.Repr[T]), ", ") + ")"
}
