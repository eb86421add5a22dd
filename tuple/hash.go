package tuple

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/hashing"
)

var (
	_ hashing.Hashable = (*Vec2[int32])(nil)
	_ hashing.Hashable = (*Vec3[int32])(nil)
	_ hashing.Hashable = (*Vec4[int32])(nil)
)

// unitSeparator delimits components so (1, 23) and (12, 3) hash differently.
const unitSeparator = "\x1f"

// Hash writes the dimension and then every component of r, in index order, to h.
// Tuples that are Equal hash the same: negative zero is written as zero. NaN
// components all hash alike even though they never compare equal.
func Hash[T any](r Reader[T], h hash.Hash) error {
	assert.NotNil("tuple", r)
	assert.NotNil("hash", h)

	if _, err := fmt.Fprintf(h, "%d%s", r.Dimensions(), unitSeparator); err != nil {
		return err
	}

	var err error

	All(r, func(c T) bool {
		_, err = fmt.Fprintf(h, "%v%s", canonical(c), unitSeparator)

		return err == nil
	})

	return err
}

// canonical folds negative zero into zero so it formats like the value it equals.
func canonical[T any](c T) any {
	switch f := any(c).(type) {
	case float32:
		if f == 0 {
			return float32(0)
		}
	case float64:
		if f == 0 {
			return float64(0)
		}
	}

	return c
}

func (v *Vec2[T]) UpdateHash(h hash.Hash) error { return Hash[T](v, h) }
func (v *Vec3[T]) UpdateHash(h hash.Hash) error { return Hash[T](v, h) }
func (v *Vec4[T]) UpdateHash(h hash.Hash) error { return Hash[T](v, h) }
