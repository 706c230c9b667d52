package slicesx

func Map[S ~[]T, T any, V any](ts S, conv func(T) V) []V {
	vs := make([]V, len(ts))
	for i, t := range ts {
		vs[i] = conv(t)
	}
	return vs
}

// MapErr stops at the first failing conversion and returns its error.
func MapErr[S ~[]T, T any, V any](ts S, conv func(i int, t T) (V, error)) ([]V, error) {
	vs := make([]V, len(ts))
	for i, t := range ts {
		v, err := conv(i, t)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}
