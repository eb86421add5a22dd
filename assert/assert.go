// Package assert provides panic-on-failure precondition helpers. Failed
// preconditions are programmer errors: they panic immediately and are never
// compiled out.
package assert

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-tuples/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	if format, ok := args[0].(string); ok {
		panic(fmt.Sprintf(format, args[1:]...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// False asserts that the given value is false.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotNil panics with an error wrapping errors.ErrNilArgument if value is nil
// or a typed nil (pointer, slice, map, func, chan, interface).
func NotNil(name string, value any) {
	if value == nil {
		panic(fmt.Errorf("%w: %s must not be nil", errors.ErrNilArgument, name))
	}

	v := reflect.ValueOf(value)

	switch v.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		if v.IsNil() {
			panic(fmt.Errorf("%w: %s must not be nil", errors.ErrNilArgument, name))
		}
	}
}

// NoError panics with err if it is non-nil. The panic value is the error
// itself so recovering callers can use errors.Is on it.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}
