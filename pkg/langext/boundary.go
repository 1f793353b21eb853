package langext

// Catch runs f inside a failure boundary. A panic unwinding out of f is
// recovered and returned as a *PanicError; nothing escapes.
func Catch[T any](f func() T) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, newPanicError(r)
		}
	}()

	return f(), nil
}

// CatchErr is Catch for callables that already report failure as an error.
func CatchErr[T any](f func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, newPanicError(r)
		}
	}()

	return f()
}

// Try invokes f once: Success with its result, or Failure with the
// recovered panic.
func Try[T any](f func() T) Outcome[T, error] {
	v, err := Catch(f)
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](v)
}

// FromFunc invokes f once and yields None when it panics or returns nil.
func FromFunc[T any](f func() T) Maybe[T] {
	v, err := Catch(f)
	if err != nil {
		return None[T]()
	}
	return From(v)
}
