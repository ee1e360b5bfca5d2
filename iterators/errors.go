package iterators

import "github.com/adamluzsi/fleet/consterror"

const (
	// ErrDone is the panic value when Current is requested from a cursor that has no current element.
	ErrDone consterror.Error = "iterators: Current called on a done cursor"
	// ErrNotFound is returned by First when the cursor has no element at all.
	ErrNotFound consterror.Error = "iterators: not found"
	// Break can be returned from a ForEach block to stop the iteration without an error.
	Break consterror.Error = "iterators: break"
)
