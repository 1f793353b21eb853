package langext

import (
	"fmt"
)

var _ WithFailure[int, error] = Outcome[int, error]{}

const (
	successHash uint64 = 17
	failureHash uint64 = 19
)

// Outcome is either Success(result) or Failure(err). The zero value is a
// Failure carrying E's zero value.
type Outcome[T, E any] struct {
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Outcome[T, E] {
	return Outcome[T, E]{
		result:    r,
		isSuccess: true,
	}
}

func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       err,
		isSuccess: false,
	}
}

// OutcomeOf is Success(value) for a present value and Failure(Unit) otherwise.
func OutcomeOf[T any](value T) Outcome[T, Unit] {
	if IsNil(value) {
		return Failure[T](Unit{})
	}
	return Success[T, Unit](value)
}

// OutcomeOfPtr dereferences p on the present path.
func OutcomeOfPtr[T any](p *T) Outcome[T, Unit] {
	if p == nil {
		return Failure[T](Unit{})
	}
	return OutcomeOf(*p)
}

func (r Outcome[T, E]) Result() T {
	return r.result
}

func (r Outcome[T, E]) Err() E {
	return r.err
}

func (r Outcome[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Outcome[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Outcome[T, E]) Get() (T, bool) {
	return r.result, r.isSuccess
}

func (r Outcome[T, E]) GetOr(defaultValue T) T {
	if r.isSuccess {
		return r.result
	}
	return defaultValue
}

// GetOrElse calls defaultF with the failure payload only on Failure.
func (r Outcome[T, E]) GetOrElse(defaultF func(err E) T) T {
	if r.isSuccess {
		return r.result
	}
	return defaultF(r.err)
}

// Match runs exactly one of onSuccess and onFailure.
func (r Outcome[T, E]) Match(onSuccess func(T), onFailure func(E)) {
	if r.isSuccess {
		onSuccess(r.result)
	} else {
		onFailure(r.err)
	}
}

func (r Outcome[T, E]) OrElse(elseF func(err E) Outcome[T, E]) Outcome[T, E] {
	if r.isSuccess {
		return r
	}
	return elseF(r.err)
}

func (r Outcome[T, E]) Or(other Outcome[T, E]) Outcome[T, E] {
	if r.isSuccess {
		return r
	}
	return other
}

// And keeps r's failure, otherwise returns other.
func (r Outcome[T, E]) And(other Outcome[T, E]) Outcome[T, E] {
	if !r.isSuccess {
		return r
	}
	return other
}

func (r Outcome[T, E]) Equal(other Outcome[T, E]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return equalValues(r.result, other.result)
	}
	return equalValues(r.err, other.err)
}

func (r Outcome[T, E]) Hash() uint64 {
	if r.isSuccess {
		return successHash ^ hashValue(r.result)
	}
	return failureHash ^ hashValue(r.err)
}

func (r Outcome[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

// ToMaybe forgets the failure payload.
func (r Outcome[T, E]) ToMaybe() Maybe[T] {
	if r.isSuccess {
		return From(r.result)
	}
	return None[T]()
}
