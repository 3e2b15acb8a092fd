// Package eithers implements a disjoint union of a left and a right value.
//
// Eithers constructed from computations (From, Pure, PromiseOf, Promise)
// carry the failure as an error on the left and the value on the right.
// Left and Right construct an Either with an arbitrary left type.
package eithers

import (
	"context"
	"fmt"

	"github.com/abevier/outcome/faults"
	"github.com/abevier/outcome/futures"
	"github.com/abevier/outcome/internal/capture"
)

// Either holds either a value of type L or a value of type R. The zero value is
// a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs a left Either.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right constructs a right Either.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

func fromCapture[R any](value R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](value)
}

// From invokes f. A panic, a nil return value or an error return value yields
// a Left with the normalized error, anything else a Right.
func From[R any](f func() R) Either[error, R] {
	return fromCapture(capture.Call(f))
}

// Pure wraps value with the same checks as From.
func Pure[R any](value R) Either[error, R] {
	return From(func() R { return value })
}

// PromiseOf invokes f and waits for the future it returns. A rejected future
// yields a Left with the normalized reason; a resolved one is checked like the
// return value in From.
func PromiseOf[R any](ctx context.Context, f func() *futures.Future[R]) Either[error, R] {
	return fromCapture(capture.Await(ctx, f))
}

// Promise waits for fut, see PromiseOf.
func Promise[R any](ctx context.Context, fut *futures.Future[R]) Either[error, R] {
	return PromiseOf(ctx, func() *futures.Future[R] { return fut })
}

// IsLeft reports whether e holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether e holds a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and panics with faults.IllegalStateError on a
// Right.
func (e Either[L, R]) Left() L {
	if e.isRight {
		faults.IllegalState("left", "Right")
	}
	return e.left
}

// Right returns the right value and panics with faults.IllegalStateError on a
// Left.
func (e Either[L, R]) Right() R {
	if !e.isRight {
		faults.IllegalState("right", "Left")
	}
	return e.right
}

// OrElse returns the right value, or fallback on a Left.
func (e Either[L, R]) OrElse(fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Map applies f to a right value. A Left is passed through.
func Map[L, R, B any](e Either[L, R], f func(R) B) Either[L, B] {
	if !e.isRight {
		return Left[L, B](e.left)
	}
	return Right[L](f(e.right))
}

// FlatMap applies f to a right value and returns its result. A Left is passed
// through.
func FlatMap[L, R, B any](e Either[L, R], f func(R) Either[L, B]) Either[L, B] {
	if !e.isRight {
		return Left[L, B](e.left)
	}
	return f(e.right)
}

// MapLeft applies f to a left value. A Right keeps its value.
func MapLeft[L, R, LB any](e Either[L, R], f func(L) LB) Either[LB, R] {
	if e.isRight {
		return Right[LB](e.right)
	}
	return Left[LB, R](f(e.left))
}

// Fold collapses the Either with onRight or onLeft.
func Fold[L, R, B any](e Either[L, R], onRight func(R) B, onLeft func(L) B) B {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Flatten applies f to a right value. Flattening a Left panics with
// faults.ErrFlattenLeft.
func Flatten[L, R, B any](e Either[L, R], f func(R) B) B {
	if !e.isRight {
		panic(faults.ErrFlattenLeft)
	}
	return f(e.right)
}
