// Package iteratorscontract holds the behaviour every iterators.Cursor implementation must satisfy.
package iteratorscontract

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fleet/iterators"
)

// Cursor verifies the traversal contract of a cursor implementation.
type Cursor[T any] struct {
	// Subject makes a fresh cursor,
	// and returns the elements it is expected to yield, in order.
	// The contract closes the cursor when a test is done with it.
	Subject func(testing.TB) (iterators.Cursor[T], []T)
}

type fixture[T any] struct {
	cursor   iterators.Cursor[T]
	expected []T
}

func (c Cursor[T]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Cursor[T]) Spec(s *testcase.Spec) {
	s.Let(`fixture`, func(t *testcase.T) interface{} {
		cursor, expected := c.Subject(t)
		if len(expected) == 0 {
			expected = nil
		}
		return fixture[T]{cursor: cursor, expected: expected}
	})
	get := func(t *testcase.T) fixture[T] { return t.I(`fixture`).(fixture[T]) }
	s.After(func(t *testcase.T) { _ = get(t).cursor.Close() })

	s.Then(`it yields the expected elements in order, then it is done`, func(t *testcase.T) {
		f := get(t)
		require.Equal(t, f.expected, drain(f.cursor))
		require.True(t, f.cursor.IsDone())
		require.Nil(t, f.cursor.Err())
	})

	s.Then(`it is positioned at the first element right after construction`, func(t *testcase.T) {
		f := get(t)
		if len(f.expected) == 0 {
			require.True(t, f.cursor.IsDone())
			return
		}
		require.False(t, f.cursor.IsDone())
		require.Equal(t, f.expected[0], f.cursor.Current())
	})

	s.Then(`First rewinds to the beginning after a full traversal`, func(t *testcase.T) {
		f := get(t)
		_ = drain(f.cursor)
		require.Equal(t, f.expected, drain(f.cursor))
	})

	s.Then(`First rewinds to the beginning in the middle of a traversal`, func(t *testcase.T) {
		f := get(t)
		f.cursor.First()
		for i := 0; i < len(f.expected)/2+1 && !f.cursor.IsDone(); i++ {
			f.cursor.Next()
		}
		f.cursor.First()
		if len(f.expected) == 0 {
			require.True(t, f.cursor.IsDone())
			return
		}
		require.False(t, f.cursor.IsDone())
		require.Equal(t, f.expected[0], f.cursor.Current())
		require.Equal(t, f.expected, drain(f.cursor))
	})

	s.Then(`First is idempotent`, func(t *testcase.T) {
		f := get(t)
		f.cursor.First()
		f.cursor.First()
		if len(f.expected) == 0 {
			require.True(t, f.cursor.IsDone())
			return
		}
		require.Equal(t, f.expected[0], f.cursor.Current())
	})

	s.Then(`Next on a done cursor keeps it done`, func(t *testcase.T) {
		f := get(t)
		_ = drain(f.cursor)
		for i := 0; i < 3; i++ {
			f.cursor.Next()
			require.True(t, f.cursor.IsDone())
		}
	})

	s.Then(`Current on a done cursor panics with ErrDone`, func(t *testcase.T) {
		f := get(t)
		_ = drain(f.cursor)
		require.PanicsWithValue(t, iterators.ErrDone, func() { f.cursor.Current() })
	})

	s.Then(`a closed cursor is done`, func(t *testcase.T) {
		f := get(t)
		require.Nil(t, f.cursor.Close())
		require.True(t, f.cursor.IsDone())
		f.cursor.First()
		require.True(t, f.cursor.IsDone())
	})
}

// drain traverses the cursor from its first element, the same way a consumer does.
func drain[T any](c iterators.Cursor[T]) []T {
	var vs []T
	for c.First(); !c.IsDone(); c.Next() {
		vs = append(vs, c.Current())
	}
	return vs
}
