package iterators

// Collect gathers every element of the cursor into a slice, in the order the cursor yields them.
func Collect[T any](c Cursor[T]) ([]T, error) {
	var vs []T
	err := ForEach(c, func(v T) error {
		vs = append(vs, v)
		return nil
	})
	return vs, err
}
