package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fleet/iterators"
)

func TestError(t *testing.T) {
	t.Parallel()

	expected := errors.New("boom")
	c := iterators.Error[int](expected)

	c.First()
	require.True(t, c.IsDone())
	c.Next()
	require.True(t, c.IsDone())
	require.Equal(t, expected, c.Err())
	require.PanicsWithValue(t, iterators.ErrDone, func() { c.Current() })
	require.Nil(t, c.Close())
}
