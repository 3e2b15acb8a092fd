// Package futures provides an implementation of a Future which represents an asynchronous computation.
// A Future can be created and then passed around and read by multiple consumers.  This is the key difference
// between a Future and using a channel for an asynchronous computation as a channel value can only be read once.
//
// Futures are the asynchronous input of the PromiseOf and Promise constructors of the results, options
// and eithers packages.
package futures

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/abevier/outcome/faults"
)

var (
	// ErrCanceled is the error reported when a future is completed by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// Future is a structure that represents an asynchronous computation.
// A Future should be created by calling New() or using the FromFunc convience function.
// Once a future has been created it can be completed exactly once.  The first completion value
// wins and all other completions are silently ignored.
//
// The functions Complete, Cancel and Fail will all complete a future.
// Complete is used in the success case
// Fail is used for signaling that the Future failed with an error
// Cancel is used to signal that the asynchronous computation was canceled
//
// Get is used to extract the value and an error from the Future.  If the future has not been
// completed calling Get will block until the future completes or until the context is canceled.
// Get can be called by multiple go routines simultaneously and they will all receive the same value.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	err   error
}

// New creates a new uncompleted Future that will eventually contain a value of type T which can be anything.
// This future must be manually completed by calling Complete, Fail, or Cancel
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// NewWithContext creates a new uncompleted Future which fails with the context's error as soon as ctx is done,
// unless it has been completed before.
func NewWithContext[T any](ctx context.Context) *Future[T] {
	f := New[T]()

	go func() {
		select {
		case <-ctx.Done():
			tracer().Debugf("context of future done: %v", ctx.Err())
			f.Fail(ctx.Err())
		case <-f.completed:
		}
	}()

	return f
}

// FromFunc creates a new uncompleted Future that will eventually contain the return value of the provided function.
// The provided function is run asynchronously when this function is invoked.  If the function panics, the future
// fails with the normalized panic value.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		returned := false
		defer func() {
			if !returned {
				r := recover()
				tracer().Debugf("future function panicked: %v", r)
				f.Fail(faults.Normalize(r))
			}
		}()

		t, err := do()
		returned = true
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Resolved creates a Future which is already completed with value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Rejected creates a Future which has already failed with err.
func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Complete completes this Future with the provided value.  If the future has already been completed this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil)
}

// Cancel completes this Future with the ErrCanceled error.  If the future has already been completed this call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail completes this Future with the provided error.  If the future has already been completed this call is ignored.
func (f *Future[T]) Fail(err error) {
	f.internalComplete(*new(T), err)
}

func (f *Future[T]) internalComplete(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Done returns a channel which is closed once the future has been completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

// Get retrieves the value of this Future.  If the future is not yet completed this call will block until the future is
// completed or until the provided context is canceled.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	// a completed future wins over a done context
	select {
	case <-f.completed:
		return f.value, f.err
	default:
	}
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
