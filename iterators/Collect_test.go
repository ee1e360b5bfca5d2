package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fleet/iterators"
)

func TestCollect(t *testing.T) {
	t.Run(`elements are collected in order`, func(t *testing.T) {
		vs := randomInts(10)
		got, err := iterators.Collect[int](iterators.Slice(vs))
		require.Nil(t, err)
		require.Equal(t, vs, got)
	})

	t.Run(`empty cursor gives empty result`, func(t *testing.T) {
		got, err := iterators.Collect[int](iterators.Empty[int]())
		require.Nil(t, err)
		require.Empty(t, got)
	})

	t.Run(`the cursor error is returned`, func(t *testing.T) {
		expected := errors.New("boom")
		_, err := iterators.Collect[int](iterators.Error[int](expected))
		require.Equal(t, expected, err)
	})
}
