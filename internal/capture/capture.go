// Package capture runs caller-supplied computations inside a recoverable
// failure boundary and classifies what they produce.
//
// It is the construction pipeline of results.Result. Options and eithers use
// it as well, so all three types agree on what counts as a failure: a panic,
// a returned nil, or a returned non-nil error value.
package capture

import (
	"context"

	"github.com/abevier/outcome/faults"
	"github.com/abevier/outcome/futures"
	"github.com/abevier/outcome/internal/nilcheck"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'outcome.capture'.
func tracer() tracing.Trace {
	return tracing.Select("outcome.capture")
}

// Value classifies v. A non-nil error value is returned as the failure, a
// nil value fails with faults.ErrNilValue.
func Value[A any](v A) (A, error) {
	var zero A
	if err, ok := any(v).(error); ok && !nilcheck.IsNil(err) {
		tracer().Debugf("computation returned error value: %v", err)
		return zero, err
	}
	if nilcheck.IsNil(v) {
		tracer().Debugf("computation returned nil %T", v)
		return zero, faults.ErrNilValue
	}
	return v, nil
}

// Call invokes f and classifies its return value with Value. A panic in f is
// recovered and normalized, except for illegal-state panics, which are
// re-raised.
func Call[A any](f func() A) (a A, err error) {
	returned := false
	defer func() {
		if returned {
			return
		}
		r := recover()
		if faults.IsIllegalState(r) {
			panic(r)
		}
		tracer().Debugf("recovered from panic: %v", r)
		var zero A
		a, err = zero, faults.Normalize(r)
	}()

	v := f()
	returned = true
	return Value(v)
}

// Await invokes f and waits for the future it returns. Obtaining the future
// is subject to the same failure boundary as Call; a nil future fails with
// faults.ErrNilValue. A rejected future fails with its normalized reason, a
// resolved one is classified with Value.
//
// Get on the future is the only point at which Await blocks. If ctx ends
// first, the context error is the failure.
func Await[A any](ctx context.Context, f func() *futures.Future[A]) (A, error) {
	var zero A
	fut, err := Call(f)
	if err != nil {
		return zero, err
	}
	v, err := fut.Get(ctx)
	if err != nil {
		tracer().Debugf("future rejected: %v", err)
		return zero, faults.Normalize(err)
	}
	return Value(v)
}
