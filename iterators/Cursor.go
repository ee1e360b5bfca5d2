package iterators

import "io"

// Cursor define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use a cursor to access and traverse an aggregate without knowing its representation (data structures).
//
// After construction, and after every First call,
// the cursor is positioned at its first element, or it is already done.
type Cursor[T any] interface {
	// Closer releases the cursor and everything it owns.
	// After Close, the cursor reports IsDone.
	io.Closer
	// First positions the cursor on the first element.
	// It can be called any time, and any number of times.
	First()
	// Next moves past the current element.
	// Calling Next on a done cursor is a no-op.
	Next()
	// IsDone reports whether there is no current element.
	IsDone() bool
	// Current returns the element at the current position.
	// Calling it on a done cursor is a programming error and it panics with ErrDone.
	Current() T
	// Err return the cause if the traversal ended because of a failure.
	// For in-memory sources it is always nil.
	Err() error
}
