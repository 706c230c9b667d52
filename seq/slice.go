package seq

import (
	"strings"

	"github.com/mazzegi/seqzip/convert"
	"github.com/mazzegi/seqzip/slicesx"
)

// Slice shares its backing array with the caller: element updates are visible, the length is fixed.
type Slice[T any] []T

func Of[T any](ts ...T) Slice[T] {
	return Slice[T](ts)
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s) {
		var t T
		return t, outOfRange(i, len(s))
	}
	return s[i], nil
}

func (s Slice[T]) Prefix(n int) Sequence[T] {
	return s[:clamp(n, len(s))]
}

func (s Slice[T]) String() string {
	return formatList(s)
}

// Ref reads through a slice pointer on every call, so appends and truncations by the owner are reflected.
type Ref[T any] struct {
	p *[]T
}

func RefOf[T any](p *[]T) Ref[T] {
	return Ref[T]{p: p}
}

func (r Ref[T]) Len() int {
	return len(*r.p)
}

func (r Ref[T]) At(i int) (T, error) {
	return Slice[T](*r.p).At(i)
}

func (r Ref[T]) Prefix(n int) Sequence[T] {
	return Slice[T](*r.p).Prefix(n)
}

func (r Ref[T]) String() string {
	return formatList(*r.p)
}

func formatList[T any](ts []T) string {
	return "[" + strings.Join(slicesx.Map(ts, func(t T) string {
		return convert.Repr(t)
	}), ", ") + "]"
}
