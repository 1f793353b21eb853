package solo

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ib-77/langext/pkg/langext"
)

// ErrEmptyFailure stands in for a nil error carried by a Failure when
// failures are aggregated.
var ErrEmptyFailure = errors.New("failure without error")

func Succeed[T any](input T) langext.Outcome[T, error] {
	return langext.Success[T, error](input)
}

func Fail[T any](err error) langext.Outcome[T, error] {
	return langext.Failure[T](err)
}

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) langext.Outcome[T, error] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input langext.Outcome[T, error],
	validate func(in T) (valid bool, errMsg string)) langext.Outcome[T, error] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(input.Result()); isValid {
			return input
		} else {
			return Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against the input value and aggregates
// the failures. With breakOnError it stops at the first failure.
func ValidateAll[T any](
	input langext.Outcome[T, error],
	breakOnError bool, // exit on first error
	validators ...func(in T) (valid bool, errMsg string)) langext.Outcome[T, error] {

	if input.IsFailure() {
		return input
	}

	steps := make([]func(in langext.Outcome[T, error]) langext.Outcome[T, error], 0, len(validators))
	for _, validate := range validators {
		validate := validate
		steps = append(steps, func(langext.Outcome[T, error]) langext.Outcome[T, error] {
			return Validate(input.Result(), validate)
		})
	}

	var merr *multierror.Error
	return Join(
		input,
		breakOnError,
		func(current langext.Outcome[T, error]) langext.Outcome[T, error] {

			if current.IsFailure() {
				merr = appendFailure(merr, current.Err())
			}

			if merr == nil {
				return current
			}

			return Fail[T](merr)
		},
		steps...,
	)
}

// Bind calls onSuccess for a Success and carries a Failure across unchanged.
func Bind[In, Out, E any](input langext.Outcome[In, E],
	onSuccess func(r In) langext.Outcome[Out, E]) langext.Outcome[Out, E] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return langext.Failure[Out](input.Err())
}

func Map[In, Out, E any](input langext.Outcome[In, E],
	onSuccess func(r In) Out) langext.Outcome[Out, E] {

	if input.IsSuccess() {
		return langext.Success[Out, E](onSuccess(input.Result()))
	}
	return langext.Failure[Out](input.Err())
}

func MapErr[T, E, F any](input langext.Outcome[T, E],
	onFailure func(err E) F) langext.Outcome[T, F] {

	if input.IsSuccess() {
		return langext.Success[T, F](input.Result())
	}
	return langext.Failure[T](onFailure(input.Err()))
}

func DoubleMap[In, Out, E, F any](input langext.Outcome[In, E],
	onSuccess func(r In) Out,
	onFailure func(err E) F) langext.Outcome[Out, F] {

	if input.IsSuccess() {
		return langext.Success[Out, F](onSuccess(input.Result()))
	}
	return langext.Failure[Out](onFailure(input.Err()))
}

func Tee[T, E any](input langext.Outcome[T, E],
	onSuccess func(r T)) langext.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	}

	return input
}

func TeeIf[T, E any](input langext.Outcome[T, E],
	condition func(r T) bool,
	onSuccessAndCondition func(r T)) langext.Outcome[T, E] {

	if input.IsSuccess() {
		if condition(input.Result()) {
			onSuccessAndCondition(input.Result())
		}
	}

	return input
}

func DoubleTee[T, E any](input langext.Outcome[T, E],
	onSuccess func(r T),
	onFailure func(err E)) langext.Outcome[T, E] {

	input.Match(onSuccess, onFailure)
	return input
}

// Try runs onTryExecute inside the failure boundary: a returned error or a
// panic both become a Failure.
func Try[In, Out any](input langext.Outcome[In, error],
	onTryExecute func(r In) (Out, error)) langext.Outcome[Out, error] {

	if input.IsSuccess() {

		out, err := langext.CatchErr(func() (Out, error) {
			return onTryExecute(input.Result())
		})
		if err != nil {
			return Fail[Out](err)
		}

		return Succeed(out)
	}

	return Fail[Out](input.Err())
}

func FailOnError[T any](input langext.Outcome[T, error],
	maybeErr func(in T) error) langext.Outcome[T, error] {
	if input.IsSuccess() {
		err := maybeErr(input.Result())
		if err != nil {
			return Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

// Match runs exactly one of the handlers and returns its value.
func Match[In, Out, E any](input langext.Outcome[In, E],
	onSuccess func(r In) Out,
	onFailure func(err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

func Join[T, E any](
	input langext.Outcome[T, E],
	breakOnError bool, // exit on first error
	concat func(current langext.Outcome[T, E]) langext.Outcome[T, E],
	inputsF ...func(in langext.Outcome[T, E]) langext.Outcome[T, E]) langext.Outcome[T, E] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := concat(inputsF[0](input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			nextRes := concat(in(finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}

// Collect gathers the successful values in order, or fails with every
// failure aggregated.
func Collect[T any](inputs ...langext.Outcome[T, error]) langext.Outcome[[]T, error] {
	values := make([]T, 0, len(inputs))

	var merr *multierror.Error
	for _, in := range inputs {
		if in.IsFailure() {
			merr = appendFailure(merr, in.Err())
			continue
		}
		values = append(values, in.Result())
	}

	if merr != nil {
		return Fail[[]T](merr)
	}
	return Succeed(values)
}

func appendFailure(merr *multierror.Error, err error) *multierror.Error {
	if langext.IsNil(err) {
		err = ErrEmptyFailure
	}
	merr = multierror.Append(merr, langext.GetErrors(err)...)
	merr.ErrorFormat = lineFormat
	return merr
}

func lineFormat(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}
