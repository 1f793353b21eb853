package langext

import (
	"fmt"

	"github.com/pkg/errors"
)

const noneHash uint64 = 31

var _ Optional = Maybe[int]{}

// Maybe is either Some(value) or None. A Some never holds an absent value.
// The zero value is None.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

// Nothing is the untyped None. NonStrictEqual treats it as equal to None of
// any element type.
var Nothing = Maybe[Placeholder]{}

// From returns Some(value) for a present value and None for an absent one.
func From[T any](value T) Maybe[T] {
	if IsNil(value) {
		return None[T]()
	}
	return Maybe[T]{value: value, hasValue: true}
}

// FromPtr returns None for a nil pointer and From(*p) otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return From(*p)
}

// FromOk lifts a comma-ok pair.
func FromOk[T any](value T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}
	return From(value)
}

// Some wraps value. It panics with ErrNilValue when value is absent.
func Some[T any](value T) Maybe[T] {
	m, err := TrySome(value)
	if err != nil {
		panic(err)
	}
	return m
}

// TrySome is Some reporting the construction error instead of panicking.
func TrySome[T any](value T) (Maybe[T], error) {
	if IsNil(value) {
		return None[T](), errors.Wrapf(ErrNilValue, "Some[%T]", value)
	}
	return Maybe[T]{value: value, hasValue: true}, nil
}

func SomeUnit() Maybe[Unit] {
	return Maybe[Unit]{value: Unit{}, hasValue: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) IsSome() bool {
	return m.hasValue
}

func (m Maybe[T]) IsNone() bool {
	return !m.hasValue
}

// Get returns the payload and whether there was one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.hasValue
}

func (m Maybe[T]) GetOr(defaultValue T) T {
	if m.hasValue {
		return m.value
	}
	return defaultValue
}

// GetOrElse calls defaultF only for None.
func (m Maybe[T]) GetOrElse(defaultF func() T) T {
	if m.hasValue {
		return m.value
	}
	return defaultF()
}

// Match runs exactly one of onSome and onNone.
func (m Maybe[T]) Match(onSome func(T), onNone func()) {
	if m.hasValue {
		onSome(m.value)
	} else {
		onNone()
	}
}

// OrElse returns m when it is Some, otherwise the result of elseF.
func (m Maybe[T]) OrElse(elseF func() Maybe[T]) Maybe[T] {
	if m.hasValue {
		return m
	}
	return elseF()
}

// Or is the eager form of OrElse: other is already evaluated.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.hasValue {
		return m
	}
	return other
}

// And returns None when m is None, otherwise other.
func (m Maybe[T]) And(other Maybe[T]) Maybe[T] {
	if !m.hasValue {
		return None[T]()
	}
	return other
}

// Equal holds when both are None or both are Some with equal payloads.
func (m Maybe[T]) Equal(other Maybe[T]) bool {
	if m.hasValue != other.hasValue {
		return false
	}
	return !m.hasValue || equalValues(m.value, other.value)
}

// NonStrictEqual is Equal across element types, so Nothing equals None[int]().
func (m Maybe[T]) NonStrictEqual(other Optional) bool {
	if IsNil(other) {
		return false
	}
	if !m.hasValue {
		return other.IsNone()
	}

	v, ok := other.boxed()
	return ok && equalValues(m.value, v)
}

// Hash is consistent with Equal for payloads with a canonical %v rendering
// or their own Hash method.
func (m Maybe[T]) Hash() uint64 {
	if !m.hasValue {
		return noneHash
	}
	return noneHash ^ 1 ^ hashValue(m.value)
}

func (m Maybe[T]) String() string {
	if m.hasValue {
		return fmt.Sprintf("Some(%v)", m.value)
	}
	return "None"
}

// ToOutcome maps Some(v) to Success(v) and None to Failure(Unit).
func (m Maybe[T]) ToOutcome() Outcome[T, Unit] {
	if m.hasValue {
		return Success[T, Unit](m.value)
	}
	return Failure[T](Unit{})
}

func (m Maybe[T]) boxed() (any, bool) {
	return m.value, m.hasValue
}
