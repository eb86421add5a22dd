package tuple

import (
	"math/big"

	"github.com/amp-labs/amp-tuples/assert"
	"github.com/govalues/decimal"
)

// IsZeroBig reports whether every component of r is zero. A nil component panics.
func IsZeroBig(r Reader[*big.Int]) bool {
	return All(r, func(c *big.Int) bool {
		assert.NotNil("component", c)

		return c.Sign() == 0
	})
}

// IsZeroBigWithin reports whether every component c of r satisfies
// -tolerance <= c <= tolerance. A nil tolerance panics before any component is read.
func IsZeroBigWithin(r Reader[*big.Int], tolerance *big.Int) bool {
	assert.NotNil("tolerance", tolerance)

	lower := new(big.Int).Neg(tolerance)

	return All(r, func(c *big.Int) bool {
		assert.NotNil("component", c)

		return lower.Cmp(c) <= 0 && c.Cmp(tolerance) <= 0
	})
}

// IsZeroDecimal reports whether every component of r is zero.
func IsZeroDecimal(r Reader[decimal.Decimal]) bool {
	return All(r, decimal.Decimal.IsZero)
}

// IsZeroDecimalWithin reports whether every component c of r satisfies
// -tolerance <= c <= tolerance.
func IsZeroDecimalWithin(r Reader[decimal.Decimal], tolerance decimal.Decimal) bool {
	lower := tolerance.Neg()

	return All(r, func(c decimal.Decimal) bool {
		return lower.Cmp(c) <= 0 && c.Cmp(tolerance) <= 0
	})
}
