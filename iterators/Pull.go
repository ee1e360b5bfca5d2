package iterators

import "iter"

// Pull adapts a range-over-func sequence into a Cursor.
//
// The sequence is consumed with iter.Pull.
// First restarts the sequence from its beginning, so seq must be repeatable.
// Close stops the underlying pull, and releases what the sequence holds.
func Pull[T any](seq iter.Seq[T]) *PullCursor[T] {
	c := &PullCursor[T]{seq: seq}
	c.First()
	return c
}

type PullCursor[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()

	value  T
	done   bool
	closed bool
}

func (c *PullCursor[T]) First() {
	if c.closed {
		return
	}
	c.release()
	c.next, c.stop = iter.Pull(c.seq)
	c.done = false
	c.fetch()
}

func (c *PullCursor[T]) Next() {
	if c.IsDone() {
		return
	}
	c.fetch()
}

func (c *PullCursor[T]) IsDone() bool {
	return c.closed || c.done
}

func (c *PullCursor[T]) Current() T {
	if c.IsDone() {
		panic(ErrDone)
	}
	return c.value
}

func (c *PullCursor[T]) Err() error {
	return nil
}

func (c *PullCursor[T]) Close() error {
	c.closed = true
	c.release()
	return nil
}

func (c *PullCursor[T]) fetch() {
	v, ok := c.next()
	if !ok {
		var zero T
		c.value = zero
		c.done = true
		return
	}
	c.value = v
}

func (c *PullCursor[T]) release() {
	if c.stop != nil {
		c.stop()
		c.stop, c.next = nil, nil
	}
}
