// Package fleet is the vehicle domain that the traversal layer is exercised with.
//
// The only thing the traversal layer needs from a domain object is the Vehicle capability:
// a speed class and an electrification flag, both queryable without side effects.
// Every concrete vehicle type implements it,
// and the filters never depend on anything beyond it.
package fleet

import (
	"io"

	"github.com/adamluzsi/fleet/consterror"
)

const (
	ErrUnknownKind  consterror.Error = "fleet: unknown vehicle kind"
	ErrUnknownSpeed consterror.Error = "fleet: unknown speed"
)

// Vehicle is the capability every element must expose to be filtered.
type Vehicle interface {
	Speed() Speed
	IsElectric() bool
}

// Servicer is implemented by vehicles that can be serviced.
type Servicer interface {
	Service(w io.Writer) error
}
