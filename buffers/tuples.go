package buffers

import (
	"fmt"

	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/tuple"
	"github.com/amp-labs/amp-tuples/validate"
)

// Put writes the components of r into b in index order. If b cannot hold
// all of them it panics before writing anything.
func Put[T Element](b *Buffer, r tuple.Reader[T]) *Buffer {
	assert.NotNil("buffer", b)
	assert.NotNil("tuple", r)
	assert.NoError(validate.MinLength("remaining buffer", b.Remaining(), r.Dimensions()*elementSize[T]()))

	tuple.ForEach(r, func(_ int, v T) {
		put(b, v)
	})

	return b
}

// PutAll writes every tuple in order. Capacity is checked for the whole batch first.
func PutAll[T Element](b *Buffer, tuples ...tuple.Reader[T]) *Buffer {
	assert.NotNil("buffer", b)
	assert.NoError(validate.MinLength("remaining buffer", b.Remaining(), byteSize(tuples)))

	for _, r := range tuples {
		Put(b, r)
	}

	return b
}

// Get reads n components from b.
func Get[T Element](b *Buffer, n int) []T {
	assert.NotNil("buffer", b)
	assert.True(n >= 0, "negative component count %d", n)
	assert.NoError(validate.MinLength("remaining buffer", b.Remaining(), n*elementSize[T]()))

	out := make([]T, n)
	for i := range out {
		out[i] = get[T](b)
	}

	return out
}

// GetInto reads dst.Dimensions() components from b and applies them to dst.
func GetInto[T Element, S tuple.Writer[T, S]](b *Buffer, dst S) S { //nolint:ireturn
	assert.NotNil("dst", dst)

	return dst.SetArray(Get[T](b, dst.Dimensions()))
}

// Tuples allocates a buffer from u holding every tuple in order, flipped and
// ready to read.
func Tuples[T Element](u *Util, tuples ...tuple.Reader[T]) *Buffer {
	assert.NotNil("util", u)

	return PutAll(u.Allocate(byteSize(tuples)), tuples...).Flip()
}

func byteSize[T Element](tuples []tuple.Reader[T]) int {
	total := 0

	for i, r := range tuples {
		assert.NotNil(fmt.Sprintf("tuples[%d]", i), r)

		total += r.Dimensions()
	}

	return total * elementSize[T]()
}
