package lift

import (
	"github.com/ib-77/langext/pkg/langext"
)

// PanicToOutcome0 wraps f so that a panic becomes Failure(*langext.PanicError)
// and a normal return becomes Success.
func PanicToOutcome0[U any](f func() U) func() langext.Outcome[U, error] {
	return func() langext.Outcome[U, error] {
		return panicToOutcome(f)
	}
}

func PanicToOutcome1[A, U any](f func(A) U) func(A) langext.Outcome[U, error] {
	return func(a A) langext.Outcome[U, error] {
		return panicToOutcome(func() U { return f(a) })
	}
}

func PanicToOutcome2[A, B, U any](f func(A, B) U) func(A, B) langext.Outcome[U, error] {
	return func(a A, b B) langext.Outcome[U, error] {
		return panicToOutcome(func() U { return f(a, b) })
	}
}

func PanicToOutcome3[A, B, C, U any](f func(A, B, C) U) func(A, B, C) langext.Outcome[U, error] {
	return func(a A, b B, c C) langext.Outcome[U, error] {
		return panicToOutcome(func() U { return f(a, b, c) })
	}
}

func PanicToOutcome4[A, B, C, D, U any](f func(A, B, C, D) U) func(A, B, C, D) langext.Outcome[U, error] {
	return func(a A, b B, c C, d D) langext.Outcome[U, error] {
		return panicToOutcome(func() U { return f(a, b, c, d) })
	}
}

// PanicToMaybe0 wraps f so that a panic, or a nil result, becomes None.
func PanicToMaybe0[U any](f func() U) func() langext.Maybe[U] {
	return func() langext.Maybe[U] {
		return panicToMaybe(f)
	}
}

func PanicToMaybe1[A, U any](f func(A) U) func(A) langext.Maybe[U] {
	return func(a A) langext.Maybe[U] {
		return panicToMaybe(func() U { return f(a) })
	}
}

func PanicToMaybe2[A, B, U any](f func(A, B) U) func(A, B) langext.Maybe[U] {
	return func(a A, b B) langext.Maybe[U] {
		return panicToMaybe(func() U { return f(a, b) })
	}
}

func PanicToMaybe3[A, B, C, U any](f func(A, B, C) U) func(A, B, C) langext.Maybe[U] {
	return func(a A, b B, c C) langext.Maybe[U] {
		return panicToMaybe(func() U { return f(a, b, c) })
	}
}

func PanicToMaybe4[A, B, C, D, U any](f func(A, B, C, D) U) func(A, B, C, D) langext.Maybe[U] {
	return func(a A, b B, c C, d D) langext.Maybe[U] {
		return panicToMaybe(func() U { return f(a, b, c, d) })
	}
}

// ErrToOutcome0 wraps a (U, error) callable. The returned error is the Failure
// payload as is; a panic becomes Failure(*langext.PanicError).
func ErrToOutcome0[U any](f func() (U, error)) func() langext.Outcome[U, error] {
	return func() langext.Outcome[U, error] {
		return errToOutcome(f)
	}
}

func ErrToOutcome1[A, U any](f func(A) (U, error)) func(A) langext.Outcome[U, error] {
	return func(a A) langext.Outcome[U, error] {
		return errToOutcome(func() (U, error) { return f(a) })
	}
}

func ErrToOutcome2[A, B, U any](f func(A, B) (U, error)) func(A, B) langext.Outcome[U, error] {
	return func(a A, b B) langext.Outcome[U, error] {
		return errToOutcome(func() (U, error) { return f(a, b) })
	}
}

func ErrToOutcome3[A, B, C, U any](f func(A, B, C) (U, error)) func(A, B, C) langext.Outcome[U, error] {
	return func(a A, b B, c C) langext.Outcome[U, error] {
		return errToOutcome(func() (U, error) { return f(a, b, c) })
	}
}

func ErrToOutcome4[A, B, C, D, U any](f func(A, B, C, D) (U, error)) func(A, B, C, D) langext.Outcome[U, error] {
	return func(a A, b B, c C, d D) langext.Outcome[U, error] {
		return errToOutcome(func() (U, error) { return f(a, b, c, d) })
	}
}

// ErrToMaybe0 collapses every failure of ErrToOutcome0 to None.
func ErrToMaybe0[U any](f func() (U, error)) func() langext.Maybe[U] {
	return func() langext.Maybe[U] {
		return errToOutcome(f).ToMaybe()
	}
}

func ErrToMaybe1[A, U any](f func(A) (U, error)) func(A) langext.Maybe[U] {
	return func(a A) langext.Maybe[U] {
		return errToOutcome(func() (U, error) { return f(a) }).ToMaybe()
	}
}

func ErrToMaybe2[A, B, U any](f func(A, B) (U, error)) func(A, B) langext.Maybe[U] {
	return func(a A, b B) langext.Maybe[U] {
		return errToOutcome(func() (U, error) { return f(a, b) }).ToMaybe()
	}
}

func ErrToMaybe3[A, B, C, U any](f func(A, B, C) (U, error)) func(A, B, C) langext.Maybe[U] {
	return func(a A, b B, c C) langext.Maybe[U] {
		return errToOutcome(func() (U, error) { return f(a, b, c) }).ToMaybe()
	}
}

func ErrToMaybe4[A, B, C, D, U any](f func(A, B, C, D) (U, error)) func(A, B, C, D) langext.Maybe[U] {
	return func(a A, b B, c C, d D) langext.Maybe[U] {
		return errToOutcome(func() (U, error) { return f(a, b, c, d) }).ToMaybe()
	}
}
