/*	Package iterators provide the cursor abstraction and its building blocks.



	Summary

	A cursor decouples the consumer of a sequence from the origin of the data.
	The consumer only sees First, Next, IsDone and Current,
	while the data may live in a growable in-memory container,
	in a container/list, behind a range-over-func sequence,
	or in a bucket of an embedded database.

	Cursors are composed by wrapping.
	A decorator such as Filter owns the cursor it wraps,
	and is itself a valid Cursor, so decorators can be stacked to any depth.
	Closing the outermost cursor closes the whole chain.

		c := iterators.Filter(seq.Iterator(), isEven)
		defer c.Close()

		err := iterators.ForEach[int](c, func(n int) error {
			fmt.Println(n)
			return nil
		})



	Ownership

	Whoever constructs a cursor owns it, and must Close it exactly once.
	Passing a cursor to a decorator transfers the ownership to the decorator.
	Consumers like ForEach, Collect and Count never close the cursor they receive.

	Adapters over foreign collections hold a reference to the collection,
	and never own it. The collection must outlive the adapter.



	Preconditions

	The underlying collection must not be structurally modified while a cursor traverses it.
	Filter predicates must be pure, since a decorator may evaluate them more than once for the same element.
	A single cursor value is not safe for concurrent use.



	Resources

	https://en.wikipedia.org/wiki/Iterator_pattern
	https://en.wikipedia.org/wiki/Decorator_pattern
	https://en.wikipedia.org/wiki/Adapter_pattern

*/
package iterators
