package tuple

import (
	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/validate"
)

// Vec2 is a mutable two-component tuple. The zero value has every component
// set to the zero value of T.
type Vec2[T any] struct {
	x, y T
}

var (
	_ Reader[int32]               = (*Vec2[int32])(nil)
	_ Writer[int32, *Vec2[int32]] = (*Vec2[int32])(nil)
)

// NewVec2 returns a tuple holding x and y.
func NewVec2[T any](x, y T) *Vec2[T] {
	return &Vec2[T]{x: x, y: y}
}

// Splat2 returns a tuple with every component set to value.
func Splat2[T any](value T) *Vec2[T] {
	return NewVec2(value, value)
}

// Dimensions always returns 2.
func (v *Vec2[T]) Dimensions() int {
	return 2 //nolint:mnd
}

func (v *Vec2[T]) X() T { return v.x } //nolint:ireturn
func (v *Vec2[T]) Y() T { return v.y } //nolint:ireturn

// Get returns the component at index i (0 → X, 1 → Y).
func (v *Vec2[T]) Get(i int) T { //nolint:ireturn
	switch i {
	case 0:
		return v.X()
	case 1:
		return v.Y()
	}

	panic(validate.Index(i, v.Dimensions()))
}

func (v *Vec2[T]) SetX(x T) *Vec2[T] {
	v.x = x

	return v
}

func (v *Vec2[T]) SetY(y T) *Vec2[T] {
	v.y = y

	return v
}

// Set assigns every component, one named setter at a time.
func (v *Vec2[T]) Set(x, y T) *Vec2[T] {
	return v.SetX(x).SetY(y)
}

// SetAll assigns value to every component.
func (v *Vec2[T]) SetAll(value T) *Vec2[T] {
	return v.Set(value, value)
}

// SetByIndex assigns the component at index i (0 → X, 1 → Y).
func (v *Vec2[T]) SetByIndex(i int, value T) *Vec2[T] {
	switch i {
	case 0:
		return v.SetX(value)
	case 1:
		return v.SetY(value)
	}

	panic(validate.Index(i, v.Dimensions()))
}

// SetFrom copies the components of other, read in index order.
func (v *Vec2[T]) SetFrom(other Reader[T]) *Vec2[T] {
	assert.NotNil("other", other)
	assert.NoError(validate.Dimensions(v.Dimensions(), other.Dimensions()))

	x := other.X()
	y := other.Y()

	return v.Set(x, y)
}

// SetArray assigns values[0] and values[1]. Extra elements are ignored.
func (v *Vec2[T]) SetArray(values []T) *Vec2[T] {
	assert.NotNil("values", values)
	assert.NoError(validate.MinLength("values", len(values), v.Dimensions()))

	return v.Set(values[0], values[1])
}

// ToArray writes X and Y into out and returns out.
func (v *Vec2[T]) ToArray(out []T) []T {
	assert.NotNil("out", out)
	assert.NoError(validate.MinLength("out", len(out), v.Dimensions()))

	out[0], out[1] = v.X(), v.Y()

	return out
}

// Array returns the components in a new slice.
func (v *Vec2[T]) Array() []T {
	return []T{v.x, v.y}
}

// Clone returns an independent copy.
func (v *Vec2[T]) Clone() *Vec2[T] {
	return NewVec2(v.x, v.y)
}

func (v *Vec2[T]) String() string {
	return String[T](v)
}
