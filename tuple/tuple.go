// Package tuple implements fixed-arity typed tuples of dimension 2, 3 and 4.
//
// A tuple exposes its components by name (X, Y, Z, W) and by index (0, 1, 2, 3).
// Read access is described by Reader, Reader3 and Reader4; the concrete Vec2,
// Vec3 and Vec4 types add in-place mutation that always returns the receiver so
// calls can be chained.
//
// Every multi-component operation visits components in index order and stops at
// the first component that decides the result. Out-of-range indices, undersized
// arrays and nil arguments are programmer errors and panic with an error wrapping
// one of the sentinels in the errors package, before anything is read or written.
package tuple

import (
	"fmt"

	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/errors"
	"github.com/amp-labs/amp-tuples/validate"
)

// MaxDimensions is the largest supported tuple dimension.
const MaxDimensions = 4

// Reader is the read capability shared by every tuple: a constant dimension
// and the first two components.
type Reader[T any] interface {
	Dimensions() int
	X() T
	Y() T
}

// Reader3 is the read capability of tuples with at least three components.
type Reader3[T any] interface {
	Reader[T]
	Z() T
}

// Reader4 is the read capability of four-component tuples.
type Reader4[T any] interface {
	Reader3[T]
	W() T
}

// Writer is the write capability. It builds on Reader, and every mutation
// returns S, which for the Vec types is the receiver itself.
type Writer[T any, S any] interface {
	Reader[T]
	SetByIndex(i int, value T) S
	SetAll(value T) S
	SetArray(values []T) S
}

// Component returns the i-th component of r: 0 is X, 1 is Y, 2 is Z and 3 is W.
// It panics if i is outside [0, r.Dimensions()).
func Component[T any](r Reader[T], i int) T { //nolint:ireturn
	assert.NotNil("tuple", r)

	n := dimensions(r)
	assert.NoError(validate.Index(i, n))

	return component(r, i)
}

// ToArray writes the components of r into out in index order and returns out.
// It panics if out is nil or shorter than r.Dimensions(); nothing is written in that case.
func ToArray[T any](r Reader[T], out []T) []T {
	assert.NotNil("tuple", r)
	assert.NotNil("out", out)

	n := dimensions(r)
	assert.NoError(validate.MinLength("out", len(out), n))

	for i := range n {
		out[i] = component(r, i)
	}

	return out
}

// Array returns a freshly allocated slice holding the components of r.
func Array[T any](r Reader[T]) []T {
	assert.NotNil("tuple", r)

	return ToArray(r, make([]T, dimensions(r)))
}

// Copy reads every component of src in index order and applies them to dst in one
// SetArray call. The dimensions of src and dst must match.
func Copy[T any, S Writer[T, S]](dst S, src Reader[T]) S { //nolint:ireturn
	assert.NotNil("dst", dst)
	assert.NotNil("src", src)
	assert.NoError(validate.Dimensions(dst.Dimensions(), src.Dimensions()))

	return dst.SetArray(Array(src))
}

// All reports whether pred holds for every component of r. Components are
// visited in index order and the first false result stops the walk, so later
// getters are never called.
func All[T any](r Reader[T], pred func(T) bool) bool {
	assert.NotNil("tuple", r)
	assert.NotNil("pred", pred)

	n := dimensions(r)

	for i := range n {
		if !pred(component(r, i)) {
			return false
		}
	}

	return true
}

// ForEach calls fn with each component index and value, in index order.
func ForEach[T any](r Reader[T], fn func(i int, value T)) {
	assert.NotNil("tuple", r)
	assert.NotNil("fn", fn)

	n := dimensions(r)

	for i := range n {
		fn(i, component(r, i))
	}
}

// Equal reports whether a and b have the same dimension and equal components.
func Equal[T comparable](a, b Reader[T]) bool {
	assert.NotNil("a", a)
	assert.NotNil("b", b)

	n := dimensions(a)
	if n != dimensions(b) {
		return false
	}

	for i := range n {
		if component(a, i) != component(b, i) {
			return false
		}
	}

	return true
}

// String renders r as "(x, y, ...)".
func String[T any](r Reader[T]) string {
	if r == nil {
		return "<nil>"
	}

	switch dimensions(r) {
	case 2: //nolint:mnd
		return fmt.Sprintf("(%v, %v)", r.X(), r.Y())
	case 3: //nolint:mnd
		return fmt.Sprintf("(%v, %v, %v)", r.X(), r.Y(), component(r, 2))
	default:
		return fmt.Sprintf("(%v, %v, %v, %v)", r.X(), r.Y(), component(r, 2), component(r, 3))
	}
}

func dimensions[T any](r Reader[T]) int {
	n := r.Dimensions()
	assert.True(n >= 2 && n <= MaxDimensions, "tuple reports unsupported dimension %d", n)

	return n
}

// component dispatches an already validated index to the named getter.
func component[T any](r Reader[T], i int) T { //nolint:ireturn
	switch i {
	case 0:
		return r.X()
	case 1:
		return r.Y()
	case 2: //nolint:mnd
		return mustReader[Reader3[T]](r).Z()
	default:
		return mustReader[Reader4[T]](r).W()
	}
}

func mustReader[R any, T any](r Reader[T]) R { //nolint:ireturn
	out, ok := r.(R)
	if !ok {
		var want R

		panic(fmt.Errorf("%w: %T reports %d dimensions but is not a %T",
			errors.ErrWrongType, r, r.Dimensions(), &want))
	}

	return out
}
