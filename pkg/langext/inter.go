package langext

// Optional is satisfied by every Maybe instantiation.
type Optional interface {
	// IsSome returns true if a value is present
	IsSome() bool
	// IsNone returns true if no value is present
	IsNone() bool

	boxed() (any, bool)
}

// ResultProvider is implemented by Outcome.
type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithFailure extends ResultProvider with the failure payload.
type WithFailure[T, E any] interface {
	ResultProvider[T]
	// Err returns the failure payload if the operation failed
	Err() E
	// IsFailure returns true if the operation failed
	IsFailure() bool
}
