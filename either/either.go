// Package either implements a value which is either a success of type A or a failure of type E.
//
// Functions which change a type argument (Map, FlatMap, Flip, Join...) are package level
// functions because Go methods cannot declare type parameters.
package either

import (
	"fmt"

	"github.com/tupyy/either/option"
)

// Either holds exactly one of a success value of type A or a failure value of type E.
// Use Success or Failure to build one. The zero value is a failure holding the zero value of E.
//
// Either values are comparable with == when both A and E are comparable.
// If A or E is an interface type, == panics when the dynamic types held are not comparable.
type Either[A, E any] struct {
	success bool
	value   A
	failure E
}

// Success returns an Either holding the success value a.
func Success[A, E any](a A) Either[A, E] {
	return Either[A, E]{success: true, value: a}
}

// Failure returns an Either holding the failure value e.
func Failure[A, E any](e E) Either[A, E] {
	return Either[A, E]{failure: e}
}

// Equal reports whether x and y are the same variant holding equal values.
// Like ==, it panics if A or E is an interface type whose dynamic value is not comparable
// (e.g. an error implemented by a slice type).
func Equal[A, E comparable](x, y Either[A, E]) bool {
	return x == y
}

// IsSuccess reports whether x holds a success value.
func (x Either[A, E]) IsSuccess() bool {
	return x.success
}

// IsFailure reports whether x holds a failure value.
func (x Either[A, E]) IsFailure() bool {
	return !x.success
}

// Get returns the success value and true, or the zero value of A and false.
func (x Either[A, E]) Get() (A, bool) {
	return x.value, x.success
}

// GetFailure returns the failure value and true, or the zero value of E and false.
func (x Either[A, E]) GetFailure() (E, bool) {
	return x.failure, !x.success
}

// OrElse returns the success value or a if x is a failure.
func (x Either[A, E]) OrElse(a A) A {
	if x.success {
		return x.value
	}

	return a
}

// ToOptional drops the failure value.
func (x Either[A, E]) ToOptional() option.Option[A] {
	if x.success {
		return option.Some(x.value)
	}

	return option.None[A]()
}

// Swap turns a success into a failure and the other way around.
func (x Either[A, E]) Swap() Either[E, A] {
	if x.success {
		return Failure[E](x.value)
	}

	return Success[E, A](x.failure)
}

func (x Either[A, E]) String() string {
	if x.success {
		return fmt.Sprintf("Success(%v)", x.value)
	}

	return fmt.Sprintf("Failure(%v)", x.failure)
}

// ToEither returns Success(a) if o holds a, otherwise Failure(e).
// e is evaluated by the caller even when o is present. Use ToEitherFunc to build the failure lazily.
func ToEither[A, E any](o option.Option[A], e E) Either[A, E] {
	if a, ok := o.Get(); ok {
		return Success[A, E](a)
	}

	return Failure[A](e)
}

// ToEitherFunc is like ToEither but f is called only when o is empty.
func ToEitherFunc[A, E any](o option.Option[A], f func() E) Either[A, E] {
	if a, ok := o.Get(); ok {
		return Success[A, E](a)
	}

	return Failure[A](f())
}
