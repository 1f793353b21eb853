package lift

import (
	"github.com/ib-77/langext/pkg/langext"
)

func panicToOutcome[U any](call func() U) langext.Outcome[U, error] {
	return langext.Try(call)
}

// panicToMaybe builds the Some inside the boundary, so a nil result is
// rejected by Some and collapses to None like a panic does.
func panicToMaybe[U any](call func() U) langext.Maybe[U] {
	m, err := langext.Catch(func() langext.Maybe[U] {
		return langext.Some(call())
	})
	if err != nil {
		return langext.None[U]()
	}
	return m
}

func errToOutcome[U any](call func() (U, error)) langext.Outcome[U, error] {
	v, err := langext.CatchErr(call)
	if err != nil {
		return langext.Failure[U](err)
	}
	return langext.Success[U, error](v)
}

func okToOutcome[U any](v U, ok bool) langext.Outcome[U, langext.Unit] {
	if !ok {
		return langext.Failure[U](langext.Unit{})
	}
	return langext.OutcomeOf(v)
}

func toOutcome[U any](call func() U) langext.Outcome[U, error] {
	return present(langext.Catch(call))
}

func toOutcomePtr[U any](call func() *U) langext.Outcome[U, error] {
	p, err := langext.Catch(call)
	switch {
	case err != nil:
		return langext.Failure[U](err)
	case p == nil:
		return langext.Failure[U](langext.ErrNullResult)
	}
	return present(*p, nil)
}

func tryToOutcome[U any](call func() (U, error)) langext.Outcome[U, error] {
	return present(langext.CatchErr(call))
}

// present is the last step of every combined adapter: failure first, then
// absence, then success.
func present[U any](v U, err error) langext.Outcome[U, error] {
	switch {
	case err != nil:
		return langext.Failure[U](err)
	case langext.IsNil(v):
		return langext.Failure[U](langext.ErrNullResult)
	}
	return langext.Success[U, error](v)
}
