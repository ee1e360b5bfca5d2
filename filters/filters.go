// Package filters narrows vehicle cursors down by the attributes of the fleet.Vehicle capability.
package filters

import (
	"github.com/adamluzsi/fleet"
	"github.com/adamluzsi/fleet/iterators"
)

// BySpeed keeps the vehicles of the given speed class.
func BySpeed[V fleet.Vehicle](c iterators.Cursor[V], speed fleet.Speed) *iterators.FilterCursor[V] {
	return iterators.Filter(c, func(v V) bool { return v.Speed() == speed })
}

// ByElectric keeps the vehicles whose electrification matches.
func ByElectric[V fleet.Vehicle](c iterators.Cursor[V], electric bool) *iterators.FilterCursor[V] {
	return iterators.Filter(c, func(v V) bool { return v.IsElectric() == electric })
}
