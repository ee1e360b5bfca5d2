package iterators

// Slice returns a cursor over a plain slice.
// The slice is not copied.
func Slice[T any](slice []T) *SliceCursor[T] {
	return &SliceCursor[T]{Slice: slice}
}

type SliceCursor[T any] struct {
	Slice []T

	closed bool
	index  int
}

func (i *SliceCursor[T]) First() {
	i.index = 0
}

func (i *SliceCursor[T]) Next() {
	if i.IsDone() {
		return
	}
	i.index++
}

func (i *SliceCursor[T]) IsDone() bool {
	return i.closed || len(i.Slice) <= i.index
}

func (i *SliceCursor[T]) Current() T {
	if i.IsDone() {
		panic(ErrDone)
	}
	return i.Slice[i.index]
}

func (i *SliceCursor[T]) Err() error {
	return nil
}

func (i *SliceCursor[T]) Close() error {
	i.closed = true
	return nil
}
