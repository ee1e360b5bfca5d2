package iterators

// Forward is the native forward sequential access convention of a foreign collection.
// P is the collection's own position marker, such as a list element or an index.
type Forward[P, T any] interface {
	// Begin returns the position of the first element.
	Begin() P
	// End reports whether the position is past the last element.
	End(P) bool
	// Advance returns the position that follows the given one.
	Advance(P) P
	// Value dereference the position.
	Value(P) T
}

// Adapt presents a foreign collection as a Cursor.
//
// The adapter only reads the collection through its Forward convention,
// it doesn't copy, mutate or own it.
// The collection must outlive the adapter,
// and must not be modified while the adapter traverses it.
func Adapt[P, T any](src Forward[P, T]) *Adapter[P, T] {
	a := &Adapter[P, T]{src: src}
	a.First()
	return a
}

type Adapter[P, T any] struct {
	src Forward[P, T]
	pos P

	closed bool
}

func (a *Adapter[P, T]) First() {
	if a.closed {
		return
	}
	a.pos = a.src.Begin()
}

func (a *Adapter[P, T]) Next() {
	if a.IsDone() {
		return
	}
	a.pos = a.src.Advance(a.pos)
}

func (a *Adapter[P, T]) IsDone() bool {
	return a.closed || a.src.End(a.pos)
}

func (a *Adapter[P, T]) Current() T {
	if a.IsDone() {
		panic(ErrDone)
	}
	return a.src.Value(a.pos)
}

func (a *Adapter[P, T]) Err() error {
	return nil
}

// Close drops the position marker.
// The referenced collection is left untouched.
func (a *Adapter[P, T]) Close() error {
	var zero P
	a.pos = zero
	a.closed = true
	return nil
}
