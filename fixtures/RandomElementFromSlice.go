package fixtures

import "github.com/Pallinder/go-randomdata"

// RandomElementFromSlice picks one element of a non empty slice.
func RandomElementFromSlice[T any](slice []T) T {
	mutex.Lock()
	defer mutex.Unlock()
	return slice[randomdata.Number(len(slice))]
}
