package tiny

import (
	"github.com/ib-77/langext/pkg/langext"
	"github.com/ib-77/langext/pkg/langext/lift"
	"github.com/ib-77/langext/pkg/langext/opt"
	"github.com/ib-77/langext/pkg/langext/solo"
)

type Chain[T any] struct {
	res langext.Outcome[T, error]
}

func Start[T any](r langext.Outcome[T, error]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(solo.Succeed(v))
}

// FromMaybe starts from Some(v), or fails with ifNone.
func FromMaybe[T any](m langext.Maybe[T], ifNone error) Chain[T] {
	return Start(opt.ToOutcome(m, ifNone))
}

func (c Chain[T]) Result() langext.Outcome[T, error] {
	return c.res
}

func (c Chain[T]) Maybe() langext.Maybe[T] {
	return c.res.ToMaybe()
}

// Then composes functions that already return an Outcome
func (c Chain[T]) Then(onSuccess func(t T) langext.Outcome[T, error]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: onSuccess(c.res.Result())}
}

func (c Chain[T]) RepeatUntil(onSuccess func(t T) langext.Outcome[T, error],
	until func(t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.res.Result()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(t T) langext.Outcome[T, error],
	while func(t T) bool) Chain[T] {

	for !c.res.IsFailure() && while(c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain, otherwise the first failure.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}

	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failing chain, otherwise the last one.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: lift.ErrToOutcome1(try)(c.res.Result())}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}

	return Chain[T]{res: solo.Map(c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Result())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Match
func (c Chain[T]) Finally(
	onSuccess func(T) T,
	onFailure func(error) T,
) T {
	return solo.Match(c.res, onSuccess, onFailure)
}
