package validate

import (
	"fmt"

	"github.com/amp-labs/amp-tuples/errors"
)

// NotNil returns an error wrapping errors.ErrNilArgument if value is nil, a nil
// pointer, or a nil slice/map/func/chan. The name identifies the parameter in the message.
func NotNil(name string, value any) error {
	if isNilish(value) {
		return fmt.Errorf("%w: %s must not be nil", errors.ErrNilArgument, name)
	}

	return nil
}

// Index returns an error wrapping errors.ErrIndexOutOfRange unless 0 <= index < size.
func Index(index, size int) error {
	if index < 0 || index >= size {
		return fmt.Errorf("%w: index %d not in [0, %d)", errors.ErrIndexOutOfRange, index, size)
	}

	return nil
}

// MinLength returns an error wrapping errors.ErrBufferTooSmall if length < want.
func MinLength(name string, length, want int) error {
	if length < want {
		return fmt.Errorf("%w: %s has length %d, need at least %d", errors.ErrBufferTooSmall, name, length, want)
	}

	return nil
}

// Dimensions returns an error wrapping errors.ErrDimensionMismatch if got != want.
func Dimensions(want, got int) error {
	if want != got {
		return fmt.Errorf("%w: expected %d components, got %d", errors.ErrDimensionMismatch, want, got)
	}

	return nil
}

// Positive returns an error wrapping errors.ErrValidation if value <= 0.
func Positive(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", errors.ErrValidation, name, value)
	}

	return nil
}
