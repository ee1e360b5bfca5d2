package iterators_test

//go:generate mockgen -destination Cursor_mocks_test.go -package iterators_test github.com/adamluzsi/fleet/iterators_test IntCursor

import (
	"math/rand"

	"github.com/adamluzsi/fleet/iterators"
)

// IntCursor is the int instantiation of the cursor capability, for mocking.
type IntCursor interface {
	iterators.Cursor[int]
}

func randomInts(n int) []int {
	vs := make([]int, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, rand.Intn(1000))
	}
	return vs
}

func isEven(n int) bool { return n%2 == 0 }

func isGreaterThan(m int) func(int) bool {
	return func(n int) bool { return m < n }
}

func selectInts(vs []int, match func(int) bool) []int {
	var out []int
	for _, v := range vs {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}
