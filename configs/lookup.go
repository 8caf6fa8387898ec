package configs

import "errors"

// Lookup is First that tells whether the value is configured at all.
func Lookup[T any](loader Loader, path string) (value T, ok bool, err error) {
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, false, nil
		}
		return value, false, err
	}
	return value, true, nil
}
