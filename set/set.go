package set

func New[T comparable](ts ...T) Set[T] {
	s := make(Set[T], len(ts))
	s.Insert(ts...)
	return s
}

type Set[T comparable] map[T]struct{}

func (s Set[T]) Insert(ts ...T) {
	for _, t := range ts {
		s[t] = struct{}{}
	}
}

func (s Set[T]) Contains(t T) bool {
	_, ok := s[t]
	return ok
}
