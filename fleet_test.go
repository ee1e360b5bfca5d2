package fleet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/adamluzsi/fleet"
)

func TestNew(t *testing.T) {
	for kind, speed := range map[fleet.Kind]fleet.Speed{
		fleet.CarKind:        fleet.Fast,
		fleet.TrolleybusKind: fleet.Medium,
		fleet.BicycleKind:    fleet.Slow,
	} {
		kind, speed := kind, speed
		t.Run(string(kind), func(t *testing.T) {
			v, err := fleet.New(kind, true)
			require.Nil(t, err)
			require.Equal(t, speed, v.Speed())
			require.True(t, v.IsElectric())

			gotKind, attrs, ok := fleet.Decompose(v)
			require.True(t, ok)
			require.Equal(t, kind, gotKind)
			require.NotEmpty(t, attrs.ID)
		})
	}

	t.Run(`unknown kind`, func(t *testing.T) {
		_, err := fleet.New("hovercraft", false)
		require.ErrorIs(t, err, fleet.ErrUnknownKind)
	})

	t.Run(`every vehicle gets its own ID`, func(t *testing.T) {
		a, err := fleet.New(fleet.CarKind, false)
		require.Nil(t, err)
		b, err := fleet.New(fleet.CarKind, false)
		require.Nil(t, err)
		_, aAttrs, _ := fleet.Decompose(a)
		_, bAttrs, _ := fleet.Decompose(b)
		require.NotEqual(t, aAttrs.ID, bAttrs.ID)
	})
}

func TestVehicle_literalsKnowTheirSpeed(t *testing.T) {
	for name, tc := range map[string]struct {
		vehicle fleet.Vehicle
		speed   fleet.Speed
	}{
		`car`:        {vehicle: &fleet.Car{}, speed: fleet.Fast},
		`trolleybus`: {vehicle: &fleet.Trolleybus{Transport: fleet.Transport{ID: "7"}}, speed: fleet.Medium},
		`bicycle`:    {vehicle: &fleet.Bicycle{Transport: fleet.Transport{Electric: true}}, speed: fleet.Slow},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.speed, tc.vehicle.Speed())
		})
	}
}

func TestMake_speedFollowsTheKind(t *testing.T) {
	v, err := fleet.Make("Bicycle", fleet.Transport{ID: "42", Weight: 12.5})
	require.Nil(t, err)
	require.Equal(t, fleet.Slow, v.Speed())

	kind, attrs, ok := fleet.Decompose(v)
	require.True(t, ok)
	require.Equal(t, fleet.BicycleKind, kind)
	require.Equal(t, "42", attrs.ID)
	require.Equal(t, 12.5, attrs.Weight)
}

func TestService(t *testing.T) {
	for _, tc := range []struct {
		kind     fleet.Kind
		electric bool
		expected string
	}{
		{fleet.CarKind, true, "Servicing electric transport... Car is servicing...\n"},
		{fleet.TrolleybusKind, false, "Servicing not electric transport... Trolleybus is servicing...\n"},
		{fleet.BicycleKind, false, "Servicing not electric transport... Bicycle is servicing...\n"},
	} {
		v, err := fleet.New(tc.kind, tc.electric)
		require.Nil(t, err)

		buf := &bytes.Buffer{}
		require.Nil(t, v.(fleet.Servicer).Service(buf))
		require.Equal(t, tc.expected, buf.String())
	}
}

func TestSpeed(t *testing.T) {
	t.Run(`text form round trips`, func(t *testing.T) {
		for _, speed := range []fleet.Speed{fleet.Fast, fleet.Medium, fleet.Slow, fleet.Unknown} {
			text, err := speed.MarshalText()
			require.Nil(t, err)

			var got fleet.Speed
			require.Nil(t, got.UnmarshalText(text))
			require.Equal(t, speed, got)
		}
	})

	t.Run(`parsing is case insensitive`, func(t *testing.T) {
		speed, err := fleet.ParseSpeed(" FAST ")
		require.Nil(t, err)
		require.Equal(t, fleet.Fast, speed)
	})

	t.Run(`unknown text`, func(t *testing.T) {
		_, err := fleet.ParseSpeed("warp")
		require.ErrorIs(t, err, fleet.ErrUnknownSpeed)
	})

	t.Run(`out of range values print as unknown`, func(t *testing.T) {
		require.Equal(t, "unknown", fleet.Speed(42).String())
	})

	t.Run(`yaml`, func(t *testing.T) {
		var doc struct {
			Speed fleet.Speed `yaml:"speed"`
		}
		require.Nil(t, yaml.Unmarshal([]byte("speed: medium\n"), &doc))
		require.Equal(t, fleet.Medium, doc.Speed)
	})
}
