package iterators

// Filter decorates a cursor, and narrows it down to the elements that match.
//
// The returned cursor takes the ownership of src,
// and closing it will close src as well.
// match must be side effect free, as it may be evaluated more than once on the same element.
func Filter[T any](src Cursor[T], match func(T) bool) *FilterCursor[T] {
	fc := &FilterCursor[T]{src: src, match: match}
	fc.First()
	return fc
}

type FilterCursor[T any] struct {
	src   Cursor[T]
	match func(T) bool

	closed bool
}

func (fc *FilterCursor[T]) First() {
	fc.src.First()
	fc.skip()
}

// Next advances the wrapped cursor at least once before looking for the next match,
// so the element just consumed is never yielded again.
func (fc *FilterCursor[T]) Next() {
	if fc.src.IsDone() {
		return
	}
	fc.src.Next()
	fc.skip()
}

func (fc *FilterCursor[T]) IsDone() bool {
	return fc.src.IsDone()
}

// Current is safe to delegate,
// because whenever the cursor is not done, the wrapped cursor stands on a matching element.
func (fc *FilterCursor[T]) Current() T {
	return fc.src.Current()
}

func (fc *FilterCursor[T]) Err() error {
	return fc.src.Err()
}

func (fc *FilterCursor[T]) Close() error {
	if fc.closed {
		return nil
	}
	fc.closed = true
	return fc.src.Close()
}

func (fc *FilterCursor[T]) skip() {
	for !fc.src.IsDone() && !fc.match(fc.src.Current()) {
		fc.src.Next()
	}
}
