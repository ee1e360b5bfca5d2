package iterators

// Last traverses the cursor and returns its final element.
// When the cursor has no element, ErrNotFound is returned, unless the cursor failed.
func Last[T any](c Cursor[T]) (T, error) {
	var (
		last     T
		iterated bool
	)
	err := ForEach(c, func(v T) error {
		last, iterated = v, true
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if !iterated {
		return last, ErrNotFound
	}
	return last, nil
}
