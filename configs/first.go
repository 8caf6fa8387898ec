package configs

// First decodes the value at path from the first config file that has it.
// Missing values decode as the zero value; other errors panic, since
// files are validated against the schema before any lookup.
func First[T any](loader Loader, path string) T {
	value, _, err := Lookup[T](loader, path)
	if err != nil {
		panic(err)
	}
	return value
}
