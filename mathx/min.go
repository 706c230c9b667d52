package mathx

import "golang.org/x/exp/constraints"

// MinOf returns the smallest of ts; false if ts is empty.
func MinOf[T constraints.Ordered](ts ...T) (T, bool) {
	var m T
	if len(ts) == 0 {
		return m, false
	}
	m = ts[0]
	for _, t := range ts[1:] {
		if t < m {
			m = t
		}
	}
	return m, true
}

// Normalize shifts a negative index by n once; non-negative indexes are returned unchanged.
func Normalize[T constraints.Signed](i, n T) T {
	if i < 0 {
		return i + n
	}
	return i
}
