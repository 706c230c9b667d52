package seqzip

import (
	"fmt"
	"strings"

	"github.com/mazzegi/seqzip/convert"
	"github.com/mazzegi/seqzip/slicesx"
)

func MkTuple[A, B any](a A, b B) Tuple[A, B] {
	return Tuple[A, B]{
		First:  a,
		Second: b,
	}
}

type Tuple[A, B any] struct {
	First  A `json:"first"`
	Second B `json:"second"`
}

func (t Tuple[A, B]) String() string {
	return fmt.Sprintf("(%s, %s)", convert.Repr(t.First), convert.Repr(t.Second))
}

// FormatTuple renders the elements of ts like a tuple: (e1, e2, ...).
func FormatTuple[T any](ts []T) string {
	return "(" + strings.Join(slicesx.Map(ts, func(t T) string {
		return convert.Repr(t)
	}), ", ") + ")"
}
