package validate

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/amp-labs/amp-tuples/errors"
	"github.com/amp-labs/amp-tuples/logger"
)

type contextKey string

// wantWrappedErrorsKey is the context key for storing the wrapped errors preference.
const wantWrappedErrorsKey contextKey = "wantWrappedErrors"

// HasValidate defines the interface for types that can validate themselves without requiring a context.
// Types implementing this interface should return an error if validation fails, or nil if the value is valid.
type HasValidate interface {
	// Validate checks the validity of the implementing type and returns an error if validation fails.
	// This method should be idempotent and safe to call multiple times.
	Validate() error
}

// HasValidateWithContext defines the interface for types that require a context during validation.
type HasValidateWithContext interface {
	// Validate checks the validity of the implementing type using the provided context.
	Validate(ctx context.Context) error
}

// WithWrappedError returns a new context with the wrapped errors preference set.
// When wantWrapped is true (the default if not explicitly set), errors returned by Validate
// carry errors.ErrValidation in their chain. When false, the validator's own error is
// returned untouched.
func WithWrappedError(ctx context.Context, wantWrapped bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, wantWrappedErrorsKey, wantWrapped)
}

// wantWrappedErrors reports the wrapped errors preference, defaulting to true.
func wantWrappedErrors(ctx context.Context) bool {
	if ctx == nil {
		return true
	}

	value, ok := ctx.Value(wantWrappedErrorsKey).(bool)
	if !ok {
		return true
	}

	return value
}

// Validate performs validation on a value by checking if it implements either HasValidate or HasValidateWithContext.
// If the value implements neither interface or is nil, validation succeeds.
//
// Errors are wrapped with errors.ErrValidation unless WithWrappedError(ctx, false) was used.
// A panic inside the validator is recovered and reported as an error.
//
// Example:
//
//	opts := buffers.Options{Factory: buffers.HeapFactory{}}
//	if err := validate.Validate(ctx, opts); err != nil {
//	    return err
//	}
func Validate(ctx context.Context, value any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	err := validateInternal(ctx, value)
	if err != nil && wantWrappedErrors(ctx) {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}

	return err
}

// validateInternal performs the actual validation logic by type-asserting the value
// against the validation interfaces and records metrics for the attempt.
//
// Note: If a value implements both interfaces, HasValidate takes precedence over HasValidateWithContext
// due to Go's type switch evaluation order.
func validateInternal(ctx context.Context, value any) (err error) {
	if isNilish(value) {
		return nil
	}

	var run func() error

	switch v := value.(type) {
	case HasValidate:
		run = v.Validate
	case HasValidateWithContext:
		run = func() error { return v.Validate(ctx) }
	default:
		logger.Get(ctx).Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", v))

		validationsTotal.WithLabelValues("false", "false").Inc()

		return nil
	}

	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during validation of %T: %v", value, r) //nolint:err113
		}

		hasError := strconv.FormatBool(err != nil)

		validationsTotal.WithLabelValues("true", hasError).Inc()
		validationTime.WithLabelValues(fmt.Sprintf("%T", value), hasError).
			Observe(float64(time.Since(start).Microseconds()) / 1000.0) //nolint:mnd
	}()

	return run()
}

// isNilish returns true if the value is a literal nil
// or if it points to something with a nil value.
func isNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}
