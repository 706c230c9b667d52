package seqzip

import (
	"fmt"

	"github.com/mazzegi/seqzip/mathx"
	"github.com/mazzegi/seqzip/seq"
)

// Zip2 is the statically typed two-input form of SequenceZip.
type Zip2[A, B any] struct {
	a seq.Sequence[A]
	b seq.Sequence[B]
}

func NewZip2[A, B any](a seq.Sequence[A], b seq.Sequence[B]) *Zip2[A, B] {
	return &Zip2[A, B]{a: a, b: b}
}

func (z *Zip2[A, B]) Len() int {
	n, _ := mathx.MinOf(z.a.Len(), z.b.Len())
	return n
}

func (z *Zip2[A, B]) At(i int) (Tuple[A, B], error) {
	if i < 0 {
		i = mathx.Normalize(i, z.Len())
	}
	a, err := z.a.At(i)
	if err != nil {
		return Tuple[A, B]{}, fmt.Errorf("sequence #0: %w", err)
	}
	b, err := z.b.At(i)
	if err != nil {
		return Tuple[A, B]{}, fmt.Errorf("sequence #1: %w", err)
	}
	return MkTuple(a, b), nil
}

func (z *Zip2[A, B]) Tuples() ([]Tuple[A, B], error) {
	n := z.Len()
	ts := make([]Tuple[A, B], 0, n)
	for i := 0; i < n; i++ {
		t, err := z.At(i)
		if err != nil {
			return nil, fmt.Errorf("tuple %d: %w", i, err)
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// Untyped returns the same inputs as a SequenceZip over erased elements.
func (z *Zip2[A, B]) Untyped() *SequenceZip[any] {
	return MustNew(seq.Erase(z.a), seq.Erase(z.b))
}

// EqualZip2 compares own-length prefixes like Equal does for SequenceZip.
func EqualZip2[A, B comparable](x, y *Zip2[A, B]) bool {
	xn, yn := x.Len(), y.Len()
	return seq.Equal(x.a.Prefix(xn), y.a.Prefix(yn)) &&
		seq.Equal(x.b.Prefix(xn), y.b.Prefix(yn))
}

func (z *Zip2[A, B]) String() string {
	return fmt.Sprintf("Zip2(%s, %s)", seq.Repr(z.a), seq.Repr(z.b))
}
