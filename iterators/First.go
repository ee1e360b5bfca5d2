package iterators

// First returns the first element of the cursor.
// When the cursor has no element, ErrNotFound is returned, unless the cursor failed.
func First[T any](c Cursor[T]) (T, error) {
	var zero T
	c.First()
	if c.IsDone() {
		if err := c.Err(); err != nil {
			return zero, err
		}
		return zero, ErrNotFound
	}
	return c.Current(), nil
}
