package pure_utils

// Map returns a new slice with the same length as src, but with values transformed by f
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// MapErr returns a new slice with the same length as src, but with values transformed by f
// If f returns an error, the function stops and returns the error.
func MapErr[T, U any](src []T, f func(T) (U, error)) ([]U, error) {
	us := make([]U, len(src))
	for i := range src {
		var err error
		us[i], err = f(src[i])
		if err != nil {
			return nil, err
		}
	}
	return us, nil
}

func MapSliceToMap[T, V any, K comparable](input []T, f func(v T) (K, V)) map[K]V {
	output := make(map[K]V, len(input))

	for _, item := range input {
		k, v := f(item)
		output[k] = v
	}

	return output
}

// GroupBy collects the elements of src into buckets keyed by f.
func GroupBy[T any, K comparable](src []T, f func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, item := range src {
		key := f(item)
		out[key] = append(out[key], item)
	}
	return out
}
