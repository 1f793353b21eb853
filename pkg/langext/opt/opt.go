package opt

import (
	"github.com/ib-77/langext/pkg/langext"
)

// Bind calls f with the payload of a Some. f is never called for None.
func Bind[T, U any](m langext.Maybe[T], f func(T) langext.Maybe[U]) langext.Maybe[U] {
	if v, ok := m.Get(); ok {
		return f(v)
	}
	return langext.None[U]()
}

// Match runs exactly one of onSome and onNone and returns its result.
func Match[T, U any](m langext.Maybe[T], onSome func(T) U, onNone func() U) U {
	if v, ok := m.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// AndThen returns None when m is None without calling thenF, otherwise the
// result of thenF. The payload of m is not passed on; use Bind for that.
func AndThen[T, U any](m langext.Maybe[T], thenF func() langext.Maybe[U]) langext.Maybe[U] {
	if m.IsNone() {
		return langext.None[U]()
	}
	return thenF()
}

// Map applies f to the payload. A nil result becomes None.
func Map[T, U any](m langext.Maybe[T], f func(T) U) langext.Maybe[U] {
	if v, ok := m.Get(); ok {
		return langext.From(f(v))
	}
	return langext.None[U]()
}

func Filter[T any](m langext.Maybe[T], keep func(T) bool) langext.Maybe[T] {
	if v, ok := m.Get(); ok && keep(v) {
		return m
	}
	return langext.None[T]()
}

func Flatten[T any](m langext.Maybe[langext.Maybe[T]]) langext.Maybe[T] {
	if inner, ok := m.Get(); ok {
		return inner
	}
	return langext.None[T]()
}

// ToOutcome turns None into Failure(err).
func ToOutcome[T, E any](m langext.Maybe[T], err E) langext.Outcome[T, E] {
	if v, ok := m.Get(); ok {
		return langext.Success[T, E](v)
	}
	return langext.Failure[T](err)
}
