package eithers

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/abevier/outcome/faults"
	"github.com/abevier/outcome/futures"
	"github.com/stretchr/testify/require"
)

type account struct {
	Owner string
}

func TestFrom(t *testing.T) {
	req := require.New(t)

	e := From(func() string { return "success" })
	req.True(e.IsRight())
	req.Equal("success", e.Right())

	e = From(func() string { panic("throws") })
	req.True(e.IsLeft())
	req.EqualError(e.Left(), "throws")

	failure := errors.New("failure")
	fe := From(func() error { return failure })
	req.True(fe.IsLeft())
	req.True(fe.Left() == failure)

	missing := From(func() *account { return nil })
	req.ErrorIs(missing.Left(), faults.ErrNilValue)
}

func TestPure(t *testing.T) {
	req := require.New(t)

	req.Equal(1, Pure(1).Right())
	req.True(Pure[*account](nil).IsLeft())
	req.True(Pure(errors.New("failure")).IsLeft())
}

func TestPromise(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	e := Promise(ctx, futures.Resolved("hello"))
	req.Equal("hello", e.Right())

	e = Promise(ctx, futures.Rejected[string](errors.New("boom")))
	req.EqualError(e.Left(), "boom")

	missing := Promise(ctx, futures.Resolved[*account](nil))
	req.ErrorIs(missing.Left(), faults.ErrNilValue)

	e = PromiseOf(ctx, func() *futures.Future[string] {
		return futures.FromFunc(func() (string, error) { return "", errors.New("unreachable") })
	})
	req.EqualError(e.Left(), "unreachable")
}

func TestDirectConstruction(t *testing.T) {
	req := require.New(t)

	l := Left[int, string](3)
	req.True(l.IsLeft())
	req.Equal(3, l.Left())
	req.Equal("Left(3)", l.String())

	r := Right[int]("x")
	req.True(r.IsRight())
	req.Equal("x", r.Right())
	req.Equal("Right(x)", r.String())

	var nilRight Either[error, *account] = Right[error, *account](nil)
	req.True(nilRight.IsRight())
	req.Nil(nilRight.Right())

	var zero Either[int, string]
	req.True(zero.IsLeft())
}

func TestMap(t *testing.T) {
	req := require.New(t)

	r := Map(Right[error](21), func(v int) int { return v * 2 })
	req.Equal(42, r.Right())

	failure := errors.New("failure")
	called := false
	l := Map(Left[error, int](failure), func(v int) int {
		called = true
		return v
	})
	req.False(called)
	req.True(l.Left() == failure)
}

func TestFlatMap(t *testing.T) {
	req := require.New(t)

	parse := func(s string) Either[error, int] {
		return From(func() int {
			v, err := strconv.Atoi(s)
			if err != nil {
				panic(err)
			}
			return v
		})
	}

	req.Equal(12, FlatMap(Right[error]("12"), parse).Right())
	req.True(FlatMap(Right[error]("x"), parse).IsLeft())

	failure := errors.New("failure")
	req.True(FlatMap(Left[error, string](failure), parse).Left() == failure)
}

func TestMapLeft(t *testing.T) {
	req := require.New(t)

	code := func(err error) int { return len(err.Error()) }

	l := MapLeft(Left[error, string](errors.New("boom")), code)
	req.True(l.IsLeft())
	req.Equal(4, l.Left())

	r := MapLeft(Right[error]("payload"), code)
	req.True(r.IsRight())
	req.Equal("payload", r.Right())
}

func TestFold(t *testing.T) {
	req := require.New(t)

	describe := func(e Either[error, int]) string {
		return Fold(e,
			func(v int) string { return strconv.Itoa(v) },
			func(err error) string { return err.Error() },
		)
	}
	req.Equal("7", describe(Pure(7)))
	req.Equal("failure", describe(Left[error, int](errors.New("failure"))))
}

func TestFlatten(t *testing.T) {
	req := require.New(t)

	req.Equal("7", Flatten(Pure(7), strconv.Itoa))
	req.PanicsWithError(faults.ErrFlattenLeft.Error(), func() {
		Flatten(Left[error, int](errors.New("failure")), strconv.Itoa)
	})
}

func TestOrElse(t *testing.T) {
	req := require.New(t)

	req.Equal("str", Pure("str").OrElse("else"))
	req.Equal("else", Left[error, string](errors.New("failure")).OrElse("else"))
}

func TestIllegalAccess(t *testing.T) {
	req := require.New(t)

	req.PanicsWithValue(faults.IllegalStateError{Accessor: "right", Variant: "Left"}, func() {
		Left[int, string](1).Right()
	})
	req.PanicsWithValue(faults.IllegalStateError{Accessor: "left", Variant: "Right"}, func() {
		Right[int]("x").Left()
	})
}
