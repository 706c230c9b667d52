package seq

import "fmt"

// Equal reports whether a and b have the same length and pairwise equal elements.
// With T = any, comparing elements of incomparable dynamic types panics like ==.
func Equal[T comparable](a, b Sequence[T]) bool {
	return EqualFunc(a, b, func(t1, t2 T) bool {
		return t1 == t2
	})
}

func EqualFunc[T any](a, b Sequence[T], eq func(t1, t2 T) bool) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		ta, err := a.At(i)
		if err != nil {
			return false
		}
		tb, err := b.At(i)
		if err != nil {
			return false
		}
		if !eq(ta, tb) {
			return false
		}
	}
	return true
}

// Repr returns the debug representation of s.
func Repr[T any](s Sequence[T]) string {
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return formatList(Values(s))
}
