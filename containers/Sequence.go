// Package containers holds the in-memory aggregates that can hand out cursors over themselves.
package containers

import (
	"github.com/pkg/errors"

	"github.com/adamluzsi/fleet/consterror"
	"github.com/adamluzsi/fleet/iterators"
)

const ErrOutOfRange consterror.Error = "containers: index out of range"

// NewSequence returns a Sequence that holds the given elements in the given order.
func NewSequence[T any](elems ...T) *Sequence[T] {
	s := &Sequence[T]{}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Sequence is a growable, indexable list of element handles.
// It owns the handle slots, but not what the handles refer to.
//
// The zero value is an empty Sequence ready to use.
// Elements must not be added while a cursor over the Sequence is being traversed.
type Sequence[T any] struct {
	items []T
}

// Add appends the element to the end of the sequence.
func (s *Sequence[T]) Add(elem T) {
	s.items = append(s.items, elem)
}

// Size returns the number of elements.
func (s *Sequence[T]) Size() int {
	return len(s.items)
}

// At returns the element at the given index.
// Indexes outside of 0..Size()-1 yield ErrOutOfRange.
func (s *Sequence[T]) At(i int) (T, error) {
	if i < 0 || len(s.items) <= i {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, len(s.items))
	}
	return s.items[i], nil
}

// Iterator returns a new cursor over the sequence, positioned at its first element.
// Every cursor has its own position, so multiple cursors can traverse the same sequence side by side.
// The caller owns the returned cursor.
func (s *Sequence[T]) Iterator() *SequenceCursor[T] {
	return &SequenceCursor[T]{seq: s}
}

var _ iterators.Cursor[int] = (*SequenceCursor[int])(nil)

// SequenceCursor traverses a Sequence by index.
type SequenceCursor[T any] struct {
	seq    *Sequence[T]
	index  int
	closed bool
}

func (c *SequenceCursor[T]) First() {
	c.index = 0
}

func (c *SequenceCursor[T]) Next() {
	if c.IsDone() {
		return
	}
	c.index++
}

func (c *SequenceCursor[T]) IsDone() bool {
	return c.closed || c.seq.Size() <= c.index
}

func (c *SequenceCursor[T]) Current() T {
	if c.IsDone() {
		panic(iterators.ErrDone)
	}
	return c.seq.items[c.index]
}

func (c *SequenceCursor[T]) Err() error {
	return nil
}

// Close detaches the cursor from the sequence.
// The sequence and its elements are left untouched.
func (c *SequenceCursor[T]) Close() error {
	c.closed = true
	return nil
}
