package consterror

// Error is a string based error type.
// It lets a package declare its sentinel errors with the `const` keyword,
// so they can not be reassigned by a consumer of the package.
//
//	const ErrSomething consterror.Error = "pkg: something went wrong"
//
// Matching is done with errors.Is, which also sees through wrapped values.
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }
