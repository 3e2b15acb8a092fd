// Package nilcheck detects nil values hidden behind type parameters and
// interfaces, where a plain `v == nil` comparison is not available or lies.
package nilcheck

import "reflect"

// IsNil reports whether v is nil or holds a nil pointer, map, channel,
// function, interface or unsafe pointer.
//
// Nil slices are not reported: an empty slice is a usable value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
