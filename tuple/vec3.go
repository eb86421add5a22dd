package tuple

import (
	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/validate"
)

// Vec3 is a mutable three-component tuple. The zero value has every component
// set to the zero value of T.
type Vec3[T any] struct {
	x, y, z T
}

var (
	_ Reader3[int32]              = (*Vec3[int32])(nil)
	_ Writer[int32, *Vec3[int32]] = (*Vec3[int32])(nil)
)

// NewVec3 returns a tuple holding x, y and z.
func NewVec3[T any](x, y, z T) *Vec3[T] {
	return &Vec3[T]{x: x, y: y, z: z}
}

// Splat3 returns a tuple with every component set to value.
func Splat3[T any](value T) *Vec3[T] {
	return NewVec3(value, value, value)
}

// Dimensions always returns 3.
func (v *Vec3[T]) Dimensions() int {
	return 3 //nolint:mnd
}

func (v *Vec3[T]) X() T { return v.x } //nolint:ireturn
func (v *Vec3[T]) Y() T { return v.y } //nolint:ireturn
func (v *Vec3[T]) Z() T { return v.z } //nolint:ireturn

// Get returns the component at index i (0 → X, 1 → Y, 2 → Z).
func (v *Vec3[T]) Get(i int) T { //nolint:ireturn
	switch i {
	case 0:
		return v.X()
	case 1:
		return v.Y()
	case 2: //nolint:mnd
		return v.Z()
	}

	panic(validate.Index(i, v.Dimensions()))
}

func (v *Vec3[T]) SetX(x T) *Vec3[T] {
	v.x = x

	return v
}

func (v *Vec3[T]) SetY(y T) *Vec3[T] {
	v.y = y

	return v
}

func (v *Vec3[T]) SetZ(z T) *Vec3[T] {
	v.z = z

	return v
}

// Set assigns every component, one named setter at a time.
func (v *Vec3[T]) Set(x, y, z T) *Vec3[T] {
	return v.SetX(x).SetY(y).SetZ(z)
}

// SetAll assigns value to every component.
func (v *Vec3[T]) SetAll(value T) *Vec3[T] {
	return v.Set(value, value, value)
}

// SetByIndex assigns the component at index i (0 → X, 1 → Y, 2 → Z).
func (v *Vec3[T]) SetByIndex(i int, value T) *Vec3[T] {
	switch i {
	case 0:
		return v.SetX(value)
	case 1:
		return v.SetY(value)
	case 2: //nolint:mnd
		return v.SetZ(value)
	}

	panic(validate.Index(i, v.Dimensions()))
}

// SetFrom copies the components of other, read in index order.
func (v *Vec3[T]) SetFrom(other Reader3[T]) *Vec3[T] {
	assert.NotNil("other", other)
	assert.NoError(validate.Dimensions(v.Dimensions(), other.Dimensions()))

	x := other.X()
	y := other.Y()
	z := other.Z()

	return v.Set(x, y, z)
}

// SetArray assigns values[0], values[1] and values[2]. Extra elements are ignored.
func (v *Vec3[T]) SetArray(values []T) *Vec3[T] {
	assert.NotNil("values", values)
	assert.NoError(validate.MinLength("values", len(values), v.Dimensions()))

	return v.Set(values[0], values[1], values[2])
}

// ToArray writes X, Y and Z into out and returns out.
func (v *Vec3[T]) ToArray(out []T) []T {
	assert.NotNil("out", out)
	assert.NoError(validate.MinLength("out", len(out), v.Dimensions()))

	out[0], out[1], out[2] = v.X(), v.Y(), v.Z()

	return out
}

// Array returns the components in a new slice.
func (v *Vec3[T]) Array() []T {
	return []T{v.x, v.y, v.z}
}

// Clone returns an independent copy.
func (v *Vec3[T]) Clone() *Vec3[T] {
	return NewVec3(v.x, v.y, v.z)
}

func (v *Vec3[T]) String() string {
	return String[T](v)
}
