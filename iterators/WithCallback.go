package iterators

import "io"

// WithCallback wraps a cursor, and hooks into its lifecycle.
// The returned cursor owns c.
func WithCallback[T any](c Cursor[T], cb Callback) *CallbackCursor[T] {
	return &CallbackCursor[T]{Cursor: c, Callback: cb}
}

type Callback struct {
	// OnFirst is called after the wrapped cursor is rewound.
	OnFirst func()
	// OnClose replaces the Close of the wrapped cursor.
	// It receives the wrapped cursor, so it can still close it.
	OnClose func(io.Closer) error
}

type CallbackCursor[T any] struct {
	Cursor[T]
	Callback
}

func (c *CallbackCursor[T]) First() {
	c.Cursor.First()
	if c.Callback.OnFirst != nil {
		c.Callback.OnFirst()
	}
}

func (c *CallbackCursor[T]) Close() error {
	if c.Callback.OnClose != nil {
		return c.Callback.OnClose(c.Cursor)
	}
	return c.Cursor.Close()
}
