package tuple

import (
	"fmt"
	"math"

	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/errors"
	"golang.org/x/exp/constraints"
)

// Number is the set of component types that support zero and tolerance checks.
// Unsigned types are excluded because a tolerance range [-t, t] can't be
// expressed in them.
type Number interface {
	constraints.Signed | constraints.Float
}

// Float is the set of component types that can be non-finite.
type Float interface {
	constraints.Float
}

// IsZero reports whether every component of r equals zero.
func IsZero[T Number](r Reader[T]) bool {
	return All(r, func(c T) bool {
		return c == 0
	})
}

// IsZeroWithin reports whether every component c of r satisfies
// -tolerance <= c <= tolerance. Both bounds are inclusive. A negative or NaN
// tolerance matches nothing, including the most negative integer, whose
// negation overflows.
func IsZeroWithin[T Number](r Reader[T], tolerance T) bool {
	return All(r, func(c T) bool {
		return tolerance >= 0 && -tolerance <= c && c <= tolerance
	})
}

// IsFinite reports whether no component of r is NaN or infinite.
func IsFinite[T Float](r Reader[T]) bool {
	return All(r, isFinite[T])
}

// CheckFinite returns nil if every component of r is finite. Otherwise it
// returns an error wrapping errors.ErrNotFinite naming the first offending index.
func CheckFinite[T Float](r Reader[T]) error {
	assert.NotNil("tuple", r)

	n := dimensions(r)

	for i := range n {
		if c := component(r, i); !isFinite(c) {
			return fmt.Errorf("%w: component %d is %v", errors.ErrNotFinite, i, c)
		}
	}

	return nil
}

// EqualWithin reports whether a and b have the same dimension and every pair of
// components differs by at most tolerance.
func EqualWithin[T Number](a, b Reader[T], tolerance T) bool {
	assert.NotNil("a", a)
	assert.NotNil("b", b)

	n := dimensions(a)
	if n != dimensions(b) {
		return false
	}

	for i := range n {
		ca, cb := component(a, i), component(b, i)
		// Written as a negated conjunction so NaN components compare unequal.
		if !(ca-cb <= tolerance && cb-ca <= tolerance) { //nolint:staticcheck
			return false
		}
	}

	return true
}

func isFinite[T Float](c T) bool {
	f := float64(c)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
