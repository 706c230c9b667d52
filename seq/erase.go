package seq

// Erase adapts s to a Sequence[any], so sequences of different element types can be zipped together.
func Erase[T any](s Sequence[T]) Sequence[any] {
	if a, ok := any(s).(Sequence[any]); ok {
		return a
	}
	return erased[T]{s: s}
}

type erased[T any] struct {
	s Sequence[T]
}

func (e erased[T]) Len() int {
	return e.s.Len()
}

func (e erased[T]) At(i int) (any, error) {
	t, err := e.s.At(i)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (e erased[T]) Prefix(n int) Sequence[any] {
	return erased[T]{s: e.s.Prefix(n)}
}

func (e erased[T]) String() string {
	return Repr(e.s)
}
