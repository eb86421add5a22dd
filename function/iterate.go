package function

import (
	"fmt"

	"github.com/amp-labs/amp-tuples/assert"
)

// ForEach calls c with every element of values in order.
func ForEach[T any](values []T, c Consumer[T]) {
	assert.NotNil("consumer", c)

	for _, v := range values {
		c(v)
	}
}

// ForEach2D calls c with every element of values, row by row.
func ForEach2D[T any](values [][]T, c Consumer[T]) {
	assert.NotNil("consumer", c)

	for _, row := range values {
		for _, v := range row {
			c(v)
		}
	}
}

// ForEach3D calls c with every element of values, plane by plane and row by row.
func ForEach3D[T any](values [][][]T, c Consumer[T]) {
	assert.NotNil("consumer", c)

	for _, plane := range values {
		ForEach2D(plane, c)
	}
}

// ForEachIndexed calls c with the index and value of every element.
func ForEachIndexed[T any](values []T, c BiConsumer[int, T]) {
	assert.NotNil("consumer", c)

	for i, v := range values {
		c(i, v)
	}
}

// ForEachErr calls c with every element in order and stops at the first error,
// which is returned annotated with the element index.
func ForEachErr[T any](values []T, c ConsumerErr[T]) error {
	assert.NotNil("consumer", c)

	for i, v := range values {
		if err := c(v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

// Map applies f to every element and returns the results in a new slice.
// A nil input yields a nil result.
func Map[T, R any](values []T, f Function[T, R]) []R {
	assert.NotNil("function", f)

	if values == nil {
		return nil
	}

	out := make([]R, len(values))
	for i, v := range values {
		out[i] = f(v)
	}

	return out
}

// Map2D applies f to every element of a two-dimensional slice, keeping its shape.
func Map2D[T, R any](values [][]T, f Function[T, R]) [][]R {
	assert.NotNil("function", f)

	if values == nil {
		return nil
	}

	out := make([][]R, len(values))
	for i, row := range values {
		out[i] = Map(row, f)
	}

	return out
}

// MapErr is Map for a fallible function. It stops at the first error.
func MapErr[T, R any](values []T, f FunctionErr[T, R]) ([]R, error) {
	assert.NotNil("function", f)

	if values == nil {
		return nil, nil
	}

	out := make([]R, len(values))

	for i, v := range values {
		r, err := f(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out[i] = r
	}

	return out, nil
}

// Filter returns the elements for which p holds, in order.
func Filter[T any](values []T, p Predicate[T]) []T {
	assert.NotNil("predicate", p)

	var out []T

	for _, v := range values {
		if p(v) {
			out = append(out, v)
		}
	}

	return out
}
