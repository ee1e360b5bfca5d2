package iterators

// Error returns a Cursor that is always done, and reports err with its Err method.
func Error[T any](err error) *ErrorCursor[T] {
	return &ErrorCursor[T]{err: err}
}

// ErrorCursor can be used for returning an error wrapped with the cursor interface.
// This can be used when an external resource encounter an unexpected non recoverable error
// before the traversal could even start.
type ErrorCursor[T any] struct {
	err error
}

func (*ErrorCursor[T]) First() {}

func (*ErrorCursor[T]) Next() {}

func (*ErrorCursor[T]) IsDone() bool {
	return true
}

func (*ErrorCursor[T]) Current() T {
	panic(ErrDone)
}

func (c *ErrorCursor[T]) Err() error {
	return c.err
}

func (*ErrorCursor[T]) Close() error {
	return nil
}
