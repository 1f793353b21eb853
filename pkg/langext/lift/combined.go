package lift

import (
	"github.com/ib-77/langext/pkg/langext"
)

// ToOutcome0 wraps f so that a panic becomes Failure(*langext.PanicError) and a
// nil result becomes Failure(langext.NullResultError{}).
func ToOutcome0[U any](f func() U) func() langext.Outcome[U, error] {
	return func() langext.Outcome[U, error] {
		return toOutcome(f)
	}
}

func ToOutcome1[A, U any](f func(A) U) func(A) langext.Outcome[U, error] {
	return func(a A) langext.Outcome[U, error] {
		return toOutcome(func() U { return f(a) })
	}
}

func ToOutcome2[A, B, U any](f func(A, B) U) func(A, B) langext.Outcome[U, error] {
	return func(a A, b B) langext.Outcome[U, error] {
		return toOutcome(func() U { return f(a, b) })
	}
}

func ToOutcome3[A, B, C, U any](f func(A, B, C) U) func(A, B, C) langext.Outcome[U, error] {
	return func(a A, b B, c C) langext.Outcome[U, error] {
		return toOutcome(func() U { return f(a, b, c) })
	}
}

func ToOutcome4[A, B, C, D, U any](f func(A, B, C, D) U) func(A, B, C, D) langext.Outcome[U, error] {
	return func(a A, b B, c C, d D) langext.Outcome[U, error] {
		return toOutcome(func() U { return f(a, b, c, d) })
	}
}

// ToMaybe0 is ToOutcome0 without the distinction between a panic and a nil
// result: both become None.
func ToMaybe0[U any](f func() U) func() langext.Maybe[U] {
	return func() langext.Maybe[U] {
		return toOutcome(f).ToMaybe()
	}
}

func ToMaybe1[A, U any](f func(A) U) func(A) langext.Maybe[U] {
	return func(a A) langext.Maybe[U] {
		return toOutcome(func() U { return f(a) }).ToMaybe()
	}
}

func ToMaybe2[A, B, U any](f func(A, B) U) func(A, B) langext.Maybe[U] {
	return func(a A, b B) langext.Maybe[U] {
		return toOutcome(func() U { return f(a, b) }).ToMaybe()
	}
}

func ToMaybe3[A, B, C, U any](f func(A, B, C) U) func(A, B, C) langext.Maybe[U] {
	return func(a A, b B, c C) langext.Maybe[U] {
		return toOutcome(func() U { return f(a, b, c) }).ToMaybe()
	}
}

func ToMaybe4[A, B, C, D, U any](f func(A, B, C, D) U) func(A, B, C, D) langext.Maybe[U] {
	return func(a A, b B, c C, d D) langext.Maybe[U] {
		return toOutcome(func() U { return f(a, b, c, d) }).ToMaybe()
	}
}

// ToOutcomePtr0 is ToOutcome0 for pointer results, dereferenced when present.
func ToOutcomePtr0[U any](f func() *U) func() langext.Outcome[U, error] {
	return func() langext.Outcome[U, error] {
		return toOutcomePtr(f)
	}
}

func ToOutcomePtr1[A, U any](f func(A) *U) func(A) langext.Outcome[U, error] {
	return func(a A) langext.Outcome[U, error] {
		return toOutcomePtr(func() *U { return f(a) })
	}
}

func ToOutcomePtr2[A, B, U any](f func(A, B) *U) func(A, B) langext.Outcome[U, error] {
	return func(a A, b B) langext.Outcome[U, error] {
		return toOutcomePtr(func() *U { return f(a, b) })
	}
}

func ToOutcomePtr3[A, B, C, U any](f func(A, B, C) *U) func(A, B, C) langext.Outcome[U, error] {
	return func(a A, b B, c C) langext.Outcome[U, error] {
		return toOutcomePtr(func() *U { return f(a, b, c) })
	}
}

func ToOutcomePtr4[A, B, C, D, U any](f func(A, B, C, D) *U) func(A, B, C, D) langext.Outcome[U, error] {
	return func(a A, b B, c C, d D) langext.Outcome[U, error] {
		return toOutcomePtr(func() *U { return f(a, b, c, d) })
	}
}

func ToMaybePtr0[U any](f func() *U) func() langext.Maybe[U] {
	return func() langext.Maybe[U] {
		return toOutcomePtr(f).ToMaybe()
	}
}

func ToMaybePtr1[A, U any](f func(A) *U) func(A) langext.Maybe[U] {
	return func(a A) langext.Maybe[U] {
		return toOutcomePtr(func() *U { return f(a) }).ToMaybe()
	}
}

func ToMaybePtr2[A, B, U any](f func(A, B) *U) func(A, B) langext.Maybe[U] {
	return func(a A, b B) langext.Maybe[U] {
		return toOutcomePtr(func() *U { return f(a, b) }).ToMaybe()
	}
}

func ToMaybePtr3[A, B, C, U any](f func(A, B, C) *U) func(A, B, C) langext.Maybe[U] {
	return func(a A, b B, c C) langext.Maybe[U] {
		return toOutcomePtr(func() *U { return f(a, b, c) }).ToMaybe()
	}
}

func ToMaybePtr4[A, B, C, D, U any](f func(A, B, C, D) *U) func(A, B, C, D) langext.Maybe[U] {
	return func(a A, b B, c C, d D) langext.Maybe[U] {
		return toOutcomePtr(func() *U { return f(a, b, c, d) }).ToMaybe()
	}
}

// TryToOutcome0 wraps a (U, error) callable such as a repository lookup that
// returns nil, nil when nothing is found. A returned error, a panic and a nil
// result are all failures; the nil result is langext.NullResultError{}.
func TryToOutcome0[U any](f func() (U, error)) func() langext.Outcome[U, error] {
	return func() langext.Outcome[U, error] {
		return tryToOutcome(f)
	}
}

func TryToOutcome1[A, U any](f func(A) (U, error)) func(A) langext.Outcome[U, error] {
	return func(a A) langext.Outcome[U, error] {
		return tryToOutcome(func() (U, error) { return f(a) })
	}
}

func TryToOutcome2[A, B, U any](f func(A, B) (U, error)) func(A, B) langext.Outcome[U, error] {
	return func(a A, b B) langext.Outcome[U, error] {
		return tryToOutcome(func() (U, error) { return f(a, b) })
	}
}

func TryToOutcome3[A, B, C, U any](f func(A, B, C) (U, error)) func(A, B, C) langext.Outcome[U, error] {
	return func(a A, b B, c C) langext.Outcome[U, error] {
		return tryToOutcome(func() (U, error) { return f(a, b, c) })
	}
}

func TryToOutcome4[A, B, C, D, U any](f func(A, B, C, D) (U, error)) func(A, B, C, D) langext.Outcome[U, error] {
	return func(a A, b B, c C, d D) langext.Outcome[U, error] {
		return tryToOutcome(func() (U, error) { return f(a, b, c, d) })
	}
}

func TryToMaybe0[U any](f func() (U, error)) func() langext.Maybe[U] {
	return func() langext.Maybe[U] {
		return tryToOutcome(f).ToMaybe()
	}
}

func TryToMaybe1[A, U any](f func(A) (U, error)) func(A) langext.Maybe[U] {
	return func(a A) langext.Maybe[U] {
		return tryToOutcome(func() (U, error) { return f(a) }).ToMaybe()
	}
}

func TryToMaybe2[A, B, U any](f func(A, B) (U, error)) func(A, B) langext.Maybe[U] {
	return func(a A, b B) langext.Maybe[U] {
		return tryToOutcome(func() (U, error) { return f(a, b) }).ToMaybe()
	}
}

func TryToMaybe3[A, B, C, U any](f func(A, B, C) (U, error)) func(A, B, C) langext.Maybe[U] {
	return func(a A, b B, c C) langext.Maybe[U] {
		return tryToOutcome(func() (U, error) { return f(a, b, c) }).ToMaybe()
	}
}

func TryToMaybe4[A, B, C, D, U any](f func(A, B, C, D) (U, error)) func(A, B, C, D) langext.Maybe[U] {
	return func(a A, b B, c C, d D) langext.Maybe[U] {
		return tryToOutcome(func() (U, error) { return f(a, b, c, d) }).ToMaybe()
	}
}
