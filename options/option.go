// Package options implements a generic Option type for presence/absence semantics.
//
// Options are built from computations, not from bare flags: From, Pure and the
// Promise constructors apply the same failure detection as the results package
// and drop the error detail, so a panic, a nil value or an error value all end
// up as None.
//
// Example:
//
//	name := options.From(func() *User { return users[id] })
//	fmt.Println(options.Map(name, func(u *User) string { return u.Name }).OrElse("anonymous"))
package options

import (
	"context"
	"fmt"

	"github.com/abevier/outcome/faults"
	"github.com/abevier/outcome/futures"
	"github.com/abevier/outcome/internal/capture"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'outcome.options'.
func tracer() tracing.Trace {
	return tracing.Select("outcome.options")
}

// Option represents presence or absence of a value of type A. The zero value is
// None. A present value is never nil.
type Option[A any] struct {
	value A
	ok    bool
}

func some[A any](value A) Option[A] {
	return Option[A]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
func None[A any]() Option[A] {
	return Option[A]{}
}

func fromCapture[A any](value A, err error) Option[A] {
	if err != nil {
		tracer().Debugf("dropping failure for none: %v", err)
		return None[A]()
	}
	return some(value)
}

// From invokes f and wraps its return value. The result is None if f panics,
// returns nil or returns an error value.
func From[A any](f func() A) Option[A] {
	return fromCapture(capture.Call(f))
}

// Pure wraps value, which is subject to the same checks as the return value of
// a function passed to From.
func Pure[A any](value A) Option[A] {
	return From(func() A { return value })
}

// FromOk constructs an Option from a value and ok flag, mirroring Go's common
// multi-return patterns (e.g. map lookups).
func FromOk[A any](value A, ok bool) Option[A] {
	if !ok {
		return None[A]()
	}
	return Pure(value)
}

// PromiseOf invokes f and waits for the future it returns. A rejected future,
// or one resolving to nil or an error value, yields None.
func PromiseOf[A any](ctx context.Context, f func() *futures.Future[A]) Option[A] {
	return fromCapture(capture.Await(ctx, f))
}

// Promise waits for fut, see PromiseOf.
func Promise[A any](ctx context.Context, fut *futures.Future[A]) Option[A] {
	return PromiseOf(ctx, func() *futures.Future[A] { return fut })
}

// IsDefined reports true when the Option contains a value.
func (o Option[A]) IsDefined() bool {
	return o.ok
}

// IsEmpty reports true when the Option is None.
func (o Option[A]) IsEmpty() bool {
	return !o.ok
}

// Get returns the contained value. It panics with faults.IllegalStateError
// when the Option is None.
func (o Option[A]) Get() A {
	if !o.ok {
		faults.IllegalState("get", "None")
	}
	return o.value
}

// Unwrap returns the contained value along with a boolean indicating whether it
// was present.
func (o Option[A]) Unwrap() (A, bool) {
	return o.value, o.ok
}

// OrElse returns the contained value when present, otherwise it returns
// fallback.
func (o Option[A]) OrElse(fallback A) A {
	if o.ok {
		return o.value
	}
	return fallback
}

// String implements fmt.Stringer for debugging.
func (o Option[A]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the contained value. The mapped Option is None if f panics,
// returns nil or returns an error value. None is passed through without
// calling f.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return From(func() B { return f(o.value) })
}

// FlatMap chains the Option with another Option-valued function.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return f(o.value)
}

// Fold collapses the Option into a single value by applying onSome to the
// contained value or calling onNone when the Option is empty.
func Fold[A, B any](o Option[A], onSome func(A) B, onNone func() B) B {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Flatten applies f to the contained value and returns its result. Flattening
// None panics with faults.ErrFlattenNone.
func Flatten[A, B any](o Option[A], f func(A) B) B {
	if !o.ok {
		panic(faults.ErrFlattenNone)
	}
	return f(o.value)
}
