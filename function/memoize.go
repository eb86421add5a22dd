package function

import (
	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/lazy"
)

// Memoize returns a supplier that calls s at most once and then keeps
// returning the first result. A panic inside s is not remembered.
func Memoize[T any](s Supplier[T]) Supplier[T] {
	assert.NotNil("supplier", s)

	return lazy.New(s).Get
}

// MemoizeErr is Memoize for a fallible supplier. Errors are not remembered,
// so the next call retries.
func MemoizeErr[T any](s SupplierErr[T]) SupplierErr[T] {
	assert.NotNil("supplier", s)

	return lazy.NewErr(s).Get
}
