package iterators

// ForEach drives the cursor from its first element until it is done,
// and calls fn with every element it yields.
//
// Returning Break from fn stops the iteration without an error.
// Any other error stops the iteration, and it is returned as is.
// ForEach doesn't close the cursor, that remains the responsibility of its owner.
func ForEach[T any](c Cursor[T], fn func(T) error) error {
	for c.First(); !c.IsDone(); c.Next() {
		if err := fn(c.Current()); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}
	return c.Err()
}
