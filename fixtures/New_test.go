package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fleet"
	"github.com/adamluzsi/fleet/fixtures"
)

func TestVehicles(t *testing.T) {
	vs := fixtures.Vehicles(64)
	require.Len(t, vs, 64)

	for _, v := range vs {
		kind, attrs, ok := fleet.Decompose(v)
		require.True(t, ok)
		require.Contains(t, fleet.Kinds, kind)
		require.NotEmpty(t, attrs.ID)
		require.NotEqual(t, fleet.Unknown, v.Speed())
	}
}

func TestNumber(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := fixtures.Number(3, 7)
		require.GreaterOrEqual(t, n, 3)
		require.Less(t, n, 7)
	}
}
