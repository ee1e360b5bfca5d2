package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fleet/iterators"
)

func TestFirst(t *testing.T) {
	t.Run(`it returns the first element, even if the cursor was advanced before`, func(t *testing.T) {
		c := iterators.Slice([]int{42, 43, 44})
		defer c.Close()
		c.Next()

		v, err := iterators.First[int](c)
		require.Nil(t, err)
		require.Equal(t, 42, v)
	})

	t.Run(`when the cursor has no element`, func(t *testing.T) {
		_, err := iterators.First[int](iterators.Empty[int]())
		require.Equal(t, iterators.ErrNotFound, err)
	})

	t.Run(`when the cursor failed`, func(t *testing.T) {
		expected := errors.New("boom")
		_, err := iterators.First[int](iterators.Error[int](expected))
		require.Equal(t, expected, err)
	})
}
