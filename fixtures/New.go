// Package fixtures makes randomized vehicles for tests.
package fixtures

import (
	"sync"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"

	"github.com/adamluzsi/fleet"
)

var mutex sync.Mutex

// Vehicle returns a vehicle of a random kind with a random electric flag.
// This is primary and only used for testing.
func Vehicle() fleet.Vehicle {
	kind := RandomElementFromSlice(fleet.Kinds)

	mutex.Lock()
	electric := randomdata.Boolean()
	weight := randomdata.Decimal(50, 2000, 1)
	mutex.Unlock()

	v, err := fleet.Make(kind, fleet.Transport{
		ID:       uuid.NewV4().String(),
		Electric: electric,
		Weight:   weight,
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Vehicles returns n random vehicles.
func Vehicles(n int) []fleet.Vehicle {
	vs := make([]fleet.Vehicle, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, Vehicle())
	}
	return vs
}

// Number returns a random int in the [min, max) range.
func Number(min, max int) int {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Number(min, max)
}
