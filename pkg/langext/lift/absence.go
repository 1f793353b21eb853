package lift

import (
	"github.com/ib-77/langext/pkg/langext"
)

// NilToOutcome0 wraps f so that a nil result becomes Failure(Unit).
func NilToOutcome0[U any](f func() U) func() langext.Outcome[U, langext.Unit] {
	return func() langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOf(f())
	}
}

func NilToOutcome1[A, U any](f func(A) U) func(A) langext.Outcome[U, langext.Unit] {
	return func(a A) langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOf(f(a))
	}
}

func NilToOutcome2[A, B, U any](f func(A, B) U) func(A, B) langext.Outcome[U, langext.Unit] {
	return func(a A, b B) langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOf(f(a, b))
	}
}

func NilToOutcome3[A, B, C, U any](f func(A, B, C) U) func(A, B, C) langext.Outcome[U, langext.Unit] {
	return func(a A, b B, c C) langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOf(f(a, b, c))
	}
}

func NilToOutcome4[A, B, C, D, U any](f func(A, B, C, D) U) func(A, B, C, D) langext.Outcome[U, langext.Unit] {
	return func(a A, b B, c C, d D) langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOf(f(a, b, c, d))
	}
}

// NilToMaybe0 wraps f so that a nil result becomes None.
func NilToMaybe0[U any](f func() U) func() langext.Maybe[U] {
	return func() langext.Maybe[U] {
		return langext.From(f())
	}
}

func NilToMaybe1[A, U any](f func(A) U) func(A) langext.Maybe[U] {
	return func(a A) langext.Maybe[U] {
		return langext.From(f(a))
	}
}

func NilToMaybe2[A, B, U any](f func(A, B) U) func(A, B) langext.Maybe[U] {
	return func(a A, b B) langext.Maybe[U] {
		return langext.From(f(a, b))
	}
}

func NilToMaybe3[A, B, C, U any](f func(A, B, C) U) func(A, B, C) langext.Maybe[U] {
	return func(a A, b B, c C) langext.Maybe[U] {
		return langext.From(f(a, b, c))
	}
}

func NilToMaybe4[A, B, C, D, U any](f func(A, B, C, D) U) func(A, B, C, D) langext.Maybe[U] {
	return func(a A, b B, c C, d D) langext.Maybe[U] {
		return langext.From(f(a, b, c, d))
	}
}

// PtrToOutcome0 is NilToOutcome0 for pointer results, dereferenced when present.
func PtrToOutcome0[U any](f func() *U) func() langext.Outcome[U, langext.Unit] {
	return func() langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOfPtr(f())
	}
}

func PtrToOutcome1[A, U any](f func(A) *U) func(A) langext.Outcome[U, langext.Unit] {
	return func(a A) langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOfPtr(f(a))
	}
}

func PtrToOutcome2[A, B, U any](f func(A, B) *U) func(A, B) langext.Outcome[U, langext.Unit] {
	return func(a A, b B) langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOfPtr(f(a, b))
	}
}

func PtrToOutcome3[A, B, C, U any](f func(A, B, C) *U) func(A, B, C) langext.Outcome[U, langext.Unit] {
	return func(a A, b B, c C) langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOfPtr(f(a, b, c))
	}
}

func PtrToOutcome4[A, B, C, D, U any](f func(A, B, C, D) *U) func(A, B, C, D) langext.Outcome[U, langext.Unit] {
	return func(a A, b B, c C, d D) langext.Outcome[U, langext.Unit] {
		return langext.OutcomeOfPtr(f(a, b, c, d))
	}
}

func PtrToMaybe0[U any](f func() *U) func() langext.Maybe[U] {
	return func() langext.Maybe[U] {
		return langext.FromPtr(f())
	}
}

func PtrToMaybe1[A, U any](f func(A) *U) func(A) langext.Maybe[U] {
	return func(a A) langext.Maybe[U] {
		return langext.FromPtr(f(a))
	}
}

func PtrToMaybe2[A, B, U any](f func(A, B) *U) func(A, B) langext.Maybe[U] {
	return func(a A, b B) langext.Maybe[U] {
		return langext.FromPtr(f(a, b))
	}
}

func PtrToMaybe3[A, B, C, U any](f func(A, B, C) *U) func(A, B, C) langext.Maybe[U] {
	return func(a A, b B, c C) langext.Maybe[U] {
		return langext.FromPtr(f(a, b, c))
	}
}

func PtrToMaybe4[A, B, C, D, U any](f func(A, B, C, D) *U) func(A, B, C, D) langext.Maybe[U] {
	return func(a A, b B, c C, d D) langext.Maybe[U] {
		return langext.FromPtr(f(a, b, c, d))
	}
}

// OkToOutcome0 wraps a comma-ok callable: false becomes Failure(Unit).
func OkToOutcome0[U any](f func() (U, bool)) func() langext.Outcome[U, langext.Unit] {
	return func() langext.Outcome[U, langext.Unit] {
		return okToOutcome(f())
	}
}

func OkToOutcome1[A, U any](f func(A) (U, bool)) func(A) langext.Outcome[U, langext.Unit] {
	return func(a A) langext.Outcome[U, langext.Unit] {
		return okToOutcome(f(a))
	}
}

func OkToOutcome2[A, B, U any](f func(A, B) (U, bool)) func(A, B) langext.Outcome[U, langext.Unit] {
	return func(a A, b B) langext.Outcome[U, langext.Unit] {
		return okToOutcome(f(a, b))
	}
}

func OkToOutcome3[A, B, C, U any](f func(A, B, C) (U, bool)) func(A, B, C) langext.Outcome[U, langext.Unit] {
	return func(a A, b B, c C) langext.Outcome[U, langext.Unit] {
		return okToOutcome(f(a, b, c))
	}
}

func OkToOutcome4[A, B, C, D, U any](f func(A, B, C, D) (U, bool)) func(A, B, C, D) langext.Outcome[U, langext.Unit] {
	return func(a A, b B, c C, d D) langext.Outcome[U, langext.Unit] {
		return okToOutcome(f(a, b, c, d))
	}
}

func OkToMaybe0[U any](f func() (U, bool)) func() langext.Maybe[U] {
	return func() langext.Maybe[U] {
		return langext.FromOk(f())
	}
}

func OkToMaybe1[A, U any](f func(A) (U, bool)) func(A) langext.Maybe[U] {
	return func(a A) langext.Maybe[U] {
		return langext.FromOk(f(a))
	}
}

func OkToMaybe2[A, B, U any](f func(A, B) (U, bool)) func(A, B) langext.Maybe[U] {
	return func(a A, b B) langext.Maybe[U] {
		return langext.FromOk(f(a, b))
	}
}

func OkToMaybe3[A, B, C, U any](f func(A, B, C) (U, bool)) func(A, B, C) langext.Maybe[U] {
	return func(a A, b B, c C) langext.Maybe[U] {
		return langext.FromOk(f(a, b, c))
	}
}

func OkToMaybe4[A, B, C, D, U any](f func(A, B, C, D) (U, bool)) func(A, B, C, D) langext.Maybe[U] {
	return func(a A, b B, c C, d D) langext.Maybe[U] {
		return langext.FromOk(f(a, b, c, d))
	}
}
