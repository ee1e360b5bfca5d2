package iterators

// Empty cursor is used to represent nil result with Null object pattern
func Empty[T any]() *EmptyCursor[T] {
	return &EmptyCursor[T]{}
}

// EmptyCursor can help achieve Null Object Pattern when no value is logically expected and a cursor should be returned
type EmptyCursor[T any] struct{}

func (*EmptyCursor[T]) First() {}

func (*EmptyCursor[T]) Next() {}

func (*EmptyCursor[T]) IsDone() bool {
	return true
}

func (*EmptyCursor[T]) Current() T {
	panic(ErrDone)
}

func (*EmptyCursor[T]) Err() error {
	return nil
}

func (*EmptyCursor[T]) Close() error {
	return nil
}
