package vars

import "slices"

// FirstNonZero returns the first value that is not the zero value of T.
// It is used to layer command line values over config values over defaults.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	i := slices.IndexFunc(values, func(v T) bool {
		return v != zero
	})
	if i < 0 {
		return zero
	}
	return values[i]
}
