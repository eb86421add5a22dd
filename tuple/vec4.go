package tuple

import (
	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/validate"
)

// Vec4 is a mutable four-component tuple. The zero value has every component
// set to the zero value of T.
type Vec4[T any] struct {
	x, y, z, w T
}

var (
	_ Reader4[int32]              = (*Vec4[int32])(nil)
	_ Writer[int32, *Vec4[int32]] = (*Vec4[int32])(nil)
)

// NewVec4 returns a tuple holding x, y, z and w.
func NewVec4[T any](x, y, z, w T) *Vec4[T] {
	return &Vec4[T]{x: x, y: y, z: z, w: w}
}

// Splat4 returns a tuple with every component set to value.
func Splat4[T any](value T) *Vec4[T] {
	return NewVec4(value, value, value, value)
}

// Dimensions always returns 4.
func (v *Vec4[T]) Dimensions() int {
	return 4 //nolint:mnd
}

func (v *Vec4[T]) X() T { return v.x } //nolint:ireturn
func (v *Vec4[T]) Y() T { return v.y } //nolint:ireturn
func (v *Vec4[T]) Z() T { return v.z } //nolint:ireturn
func (v *Vec4[T]) W() T { return v.w } //nolint:ireturn

// Get returns the component at index i (0 → X, 1 → Y, 2 → Z, 3 → W).
func (v *Vec4[T]) Get(i int) T { //nolint:ireturn
	switch i {
	case 0:
		return v.X()
	case 1:
		return v.Y()
	case 2: //nolint:mnd
		return v.Z()
	case 3: //nolint:mnd
		return v.W()
	}

	panic(validate.Index(i, v.Dimensions()))
}

func (v *Vec4[T]) SetX(x T) *Vec4[T] {
	v.x = x

	return v
}

func (v *Vec4[T]) SetY(y T) *Vec4[T] {
	v.y = y

	return v
}

func (v *Vec4[T]) SetZ(z T) *Vec4[T] {
	v.z = z

	return v
}

func (v *Vec4[T]) SetW(w T) *Vec4[T] {
	v.w = w

	return v
}

// Set assigns every component, one named setter at a time.
func (v *Vec4[T]) Set(x, y, z, w T) *Vec4[T] {
	return v.SetX(x).SetY(y).SetZ(z).SetW(w)
}

// SetAll assigns value to every component.
func (v *Vec4[T]) SetAll(value T) *Vec4[T] {
	return v.Set(value, value, value, value)
}

// SetByIndex assigns the component at index i (0 → X, 1 → Y, 2 → Z, 3 → W).
func (v *Vec4[T]) SetByIndex(i int, value T) *Vec4[T] {
	switch i {
	case 0:
		return v.SetX(value)
	case 1:
		return v.SetY(value)
	case 2: //nolint:mnd
		return v.SetZ(value)
	case 3: //nolint:mnd
		return v.SetW(value)
	}

	panic(validate.Index(i, v.Dimensions()))
}

// SetFrom copies the components of other, read in index order.
func (v *Vec4[T]) SetFrom(other Reader4[T]) *Vec4[T] {
	assert.NotNil("other", other)
	assert.NoError(validate.Dimensions(v.Dimensions(), other.Dimensions()))

	x := other.X()
	y := other.Y()
	z := other.Z()
	w := other.W()

	return v.Set(x, y, z, w)
}

// SetArray assigns values[0] through values[3]. Extra elements are ignored.
func (v *Vec4[T]) SetArray(values []T) *Vec4[T] {
	assert.NotNil("values", values)
	assert.NoError(validate.MinLength("values", len(values), v.Dimensions()))

	return v.Set(values[0], values[1], values[2], values[3])
}

// ToArray writes X, Y, Z and W into out and returns out.
func (v *Vec4[T]) ToArray(out []T) []T {
	assert.NotNil("out", out)
	assert.NoError(validate.MinLength("out", len(out), v.Dimensions()))

	out[0], out[1], out[2], out[3] = v.X(), v.Y(), v.Z(), v.W()

	return out
}

// Array returns the components in a new slice.
func (v *Vec4[T]) Array() []T {
	return []T{v.x, v.y, v.z, v.w}
}

// Clone returns an independent copy.
func (v *Vec4[T]) Clone() *Vec4[T] {
	return NewVec4(v.x, v.y, v.z, v.w)
}

func (v *Vec4[T]) String() string {
	return String[T](v)
}
