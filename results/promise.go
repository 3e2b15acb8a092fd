package results

import (
	"context"

	"github.com/abevier/outcome/futures"
	"github.com/abevier/outcome/internal/capture"
)

// PromiseOf invokes f and blocks until the future it returns is completed.
//
// If f panics or returns a nil future, the Result is a Failure as in From. A
// rejected future yields a Failure with the normalized rejection reason. A
// resolved value is checked like the return value in From, so a future
// resolving to nil or to an error is a Failure as well.
//
// ctx is handed to Future.Get. If it ends before the future completes, the
// Result is a Failure with the context's error.
func PromiseOf[A any](ctx context.Context, f func() *futures.Future[A]) Result[A] {
	return fromCapture(capture.Await(ctx, f))
}

// Promise blocks until fut is completed, see PromiseOf.
func Promise[A any](ctx context.Context, fut *futures.Future[A]) Result[A] {
	return PromiseOf(ctx, func() *futures.Future[A] { return fut })
}

// Async is the non-blocking form of PromiseOf. The returned future completes
// with the Result once the future returned by f has been awaited. It only
// fails when f or the awaited value trigger an illegal-state access, which
// is never turned into a Result.
func Async[A any](ctx context.Context, f func() *futures.Future[A]) *futures.Future[Result[A]] {
	return futures.FromFunc(func() (Result[A], error) {
		return PromiseOf(ctx, f), nil
	})
}

// PromiseAll waits for all of the provided futures one after the other and
// returns a Result for each future at the index corresponding to the provided
// slice. If ctx ends, the remaining futures yield Failures with the context's
// error.
func PromiseAll[A any](ctx context.Context, fs []*futures.Future[A]) []Result[A] {
	res := make([]Result[A], 0, len(fs))

	for _, f := range fs {
		res = append(res, Promise(ctx, f))
	}

	tracer().Debugf("awaited %d futures", len(fs))
	return res
}
