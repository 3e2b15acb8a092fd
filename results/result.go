package results

import (
	"fmt"

	"github.com/abevier/outcome/eithers"
	"github.com/abevier/outcome/faults"
	"github.com/abevier/outcome/internal/capture"
	"github.com/abevier/outcome/options"
)

// Result is either a Success with a value of type A or a Failure with an
// error. A Success value is never nil and never an error; a Failure error is
// never nil. The zero Result is a Failure with faults.ErrUnknown.
type Result[A any] struct {
	value A
	err   error
	ok    bool
}

func success[A any](value A) Result[A] {
	return Result[A]{value: value, ok: true}
}

// Failure constructs a failed Result. err is normalized, so a nil err becomes
// faults.ErrUnknown.
func Failure[A any](err error) Result[A] {
	return Result[A]{err: faults.Normalize(err)}
}

func fromCapture[A any](value A, err error) Result[A] {
	if err != nil {
		return Result[A]{err: err}
	}
	return success(value)
}

// From invokes f and wraps its return value.
//
// If f panics, the panic value is normalized into the failure. If f returns a
// non-nil error value, that error is the failure. If f returns nil, the
// failure is faults.ErrNilValue. Otherwise the Result is a Success.
func From[A any](f func() A) Result[A] {
	return fromCapture(capture.Call(f))
}

// Pure wraps value. It is From with a function returning value, so nil and
// error values are failures.
func Pure[A any](value A) Result[A] {
	return From(func() A { return value })
}

// Try invokes a function following Go's (value, error) convention. A non-nil
// error is the failure, otherwise value is checked like in From.
func Try[A any](f func() (A, error)) Result[A] {
	var err error
	res := From(func() A {
		var v A
		v, err = f()
		return v
	})
	if err != nil {
		return Failure[A](err)
	}
	return res
}

// FromTuple converts a (value, error) pair to a Result.
func FromTuple[A any](value A, err error) Result[A] {
	return Try(func() (A, error) { return value, err })
}

// IsSuccess reports whether the Result is a Success.
func (r Result[A]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result is a Failure.
func (r Result[A]) IsFailure() bool {
	return !r.ok
}

// Get returns the value of a Success. It panics with faults.IllegalStateError
// on a Failure.
func (r Result[A]) Get() A {
	if !r.ok {
		faults.IllegalState("get", "Failure")
	}
	return r.value
}

// Err returns the error of a Failure. It panics with faults.IllegalStateError
// on a Success.
func (r Result[A]) Err() error {
	if r.ok {
		faults.IllegalState("error", "Success")
	}
	return r.failure()
}

func (r Result[A]) failure() error {
	if r.err == nil {
		return faults.ErrUnknown
	}
	return r.err
}

// Unwrap returns value and error, mirroring standard Go semantics. Exactly one
// of them is meaningful.
func (r Result[A]) Unwrap() (A, error) {
	if r.ok {
		return r.value, nil
	}
	return r.value, r.failure()
}

// OrElse returns the value of a Success or fallback.
func (r Result[A]) OrElse(fallback A) A {
	if r.ok {
		return r.value
	}
	return fallback
}

// MapError returns the value of a Success, or the value handler computes
// from the error of a Failure.
func (r Result[A]) MapError(handler func(error) A) A {
	if r.ok {
		return r.value
	}
	return handler(r.failure())
}

// ToEither converts a Success into a Right and a Failure into a Left holding
// the error.
func (r Result[A]) ToEither() eithers.Either[error, A] {
	if r.ok {
		return eithers.Right[error](r.value)
	}
	return eithers.Left[error, A](r.failure())
}

// ToOption converts a Success into Some and a Failure into None.
func (r Result[A]) ToOption() options.Option[A] {
	if r.ok {
		return options.Pure(r.value)
	}
	return options.None[A]()
}

func (r Result[A]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.failure())
}

// Map applies f to the value of a Success, with the failure detection of
// From: if f panics or returns nil or an error value, the mapped Result is a
// Failure. A Failure is passed through with its error; f is not called.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if !r.ok {
		return Result[B]{err: r.err}
	}
	return From(func() B { return f(r.value) })
}

// FlatMap returns f applied to the value of a Success. A Failure is passed
// through.
func FlatMap[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if !r.ok {
		return Result[B]{err: r.err}
	}
	return f(r.value)
}

// Fold collapses the Result with onSuccess or onFailure.
func Fold[A, B any](r Result[A], onSuccess func(A) B, onFailure func(error) B) B {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.failure())
}

// Flatten returns f applied to the value of a Success. On a Failure it panics
// with the held error, handing the failure back to ordinary panic propagation.
func Flatten[A, B any](r Result[A], f func(A) B) B {
	if !r.ok {
		err := r.failure()
		tracer().Debugf("flattening failure: %v", err)
		panic(err)
	}
	return f(r.value)
}
