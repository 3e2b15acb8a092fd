package faults

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/abevier/outcome/internal/nilcheck"
)

var (
	// ErrUnknown replaces failure indicators which are neither errors nor strings.
	ErrUnknown = errors.New("Unknown error")
	// ErrNilValue is the failure of a computation which produced nil.
	ErrNilValue = errors.New("null/undefined")
	// ErrFlattenNone is raised when flattening an empty option.
	ErrFlattenNone = errors.New("cannot flatten empty")
	// ErrFlattenLeft is raised when flattening a left either.
	ErrFlattenLeft = errors.New("cannot flatten a left")
)

// Normalize converts input into an error.
//
// A non-nil error is returned unchanged. A string, or a value of any type
// whose underlying type is string, becomes an error with that message. Any
// other input, including nil and typed nil errors, yields ErrUnknown.
func Normalize(input any) error {
	switch v := input.(type) {
	case error:
		if !nilcheck.IsNil(v) {
			return v
		}
	case string:
		return errors.New(v)
	default:
		if rv := reflect.ValueOf(input); rv.Kind() == reflect.String {
			return errors.New(rv.String())
		}
	}
	tracer().Debugf("cannot normalize value of type %T, using unknown error", input)
	return ErrUnknown
}

// IllegalStateError is the panic value of an accessor called on the wrong
// variant, e.g. Get on a failure.
type IllegalStateError struct {
	Accessor string // name of the accessor, e.g. "get"
	Variant  string // variant the accessor was called on, e.g. "Failure"
}

func (e IllegalStateError) Error() string {
	return fmt.Sprintf("%s() called on %s", e.Accessor, e.Variant)
}

// IllegalState panics with an IllegalStateError for accessor and variant.
func IllegalState(accessor, variant string) {
	panic(IllegalStateError{Accessor: accessor, Variant: variant})
}

// IsIllegalState reports whether a recovered panic value stems from an
// illegal-state access.
func IsIllegalState(v any) bool {
	switch v.(type) {
	case IllegalStateError, *IllegalStateError:
		return true
	}
	return false
}
