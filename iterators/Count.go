package iterators

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in a cursor but don't want to do anything else.
func Count[T any](c Cursor[T]) (int, error) {
	total := 0
	err := ForEach(c, func(T) error {
		total++
		return nil
	})
	return total, err
}
