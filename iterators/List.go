package iterators

import "container/list"

// AdaptList is a shorthand for adapting a container/list.List.
// Every element value in the list must be of type T.
func AdaptList[T any](l *list.List) *Adapter[*list.Element, T] {
	return Adapt[*list.Element, T](List[T]{L: l})
}

// List implements the Forward convention for a container/list.List,
// using the list elements as position markers.
type List[T any] struct {
	L *list.List
}

func (l List[T]) Begin() *list.Element {
	return l.L.Front()
}

func (l List[T]) End(e *list.Element) bool {
	return e == nil
}

func (l List[T]) Advance(e *list.Element) *list.Element {
	return e.Next()
}

func (l List[T]) Value(e *list.Element) T {
	return e.Value.(T)
}
