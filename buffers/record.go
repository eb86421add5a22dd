package buffers

import (
	"fmt"

	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/errors"
	"github.com/amp-labs/amp-tuples/tuple"
	"github.com/amp-labs/amp-tuples/validate"
)

// PutAttribute writes r as the named attribute of the given record in an
// interleaved buffer described by layout. Positions are absolute, so the
// cursor of b does not move.
func PutAttribute[T Element](b *Buffer, layout *Layout, record int, name string, r tuple.Reader[T]) error {
	assert.NotNil("buffer", b)
	assert.NotNil("tuple", r)

	window, attr, err := attributeWindow[T](b, layout, record, name)
	if err != nil {
		return err
	}

	if err := validate.Dimensions(attr.Dimensions, r.Dimensions()); err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}

	Put(window, r)

	return nil
}

// GetAttribute reads the named attribute of a record into dst.
func GetAttribute[T Element, S tuple.Writer[T, S]](b *Buffer, layout *Layout, record int, name string, dst S) error {
	assert.NotNil("buffer", b)
	assert.NotNil("dst", dst)

	window, attr, err := attributeWindow[T](b, layout, record, name)
	if err != nil {
		return err
	}

	if err := validate.Dimensions(attr.Dimensions, dst.Dimensions()); err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}

	GetInto[T](window, dst)

	return nil
}

// Records returns how many whole records of layout fit in b.
func Records(b *Buffer, layout *Layout) int {
	assert.NotNil("buffer", b)
	assert.NotNil("layout", layout)

	stride := layout.Stride()
	if stride == 0 {
		return 0
	}

	return b.Capacity() / stride
}

func attributeWindow[T Element](b *Buffer, layout *Layout, record int, name string) (*Buffer, Attribute, error) {
	assert.NotNil("layout", layout)

	attr, ok := layout.Attribute(name)
	if !ok {
		return nil, Attribute{}, fmt.Errorf("%w: no attribute named %q", errors.ErrValidation, name)
	}

	if want := componentTypeOf[T](); attr.Type != want {
		return nil, Attribute{}, fmt.Errorf("%w: attribute %q holds %s, not %s",
			errors.ErrWrongType, name, attr.Type, want)
	}

	if err := validate.Index(record, Records(b, layout)); err != nil {
		return nil, Attribute{}, fmt.Errorf("record: %w", err)
	}

	offset, _ := layout.Offset(name)
	start := record*layout.Stride() + offset

	return wrap(b.data[start:start+attr.Size()], b.order), attr, nil
}

func componentTypeOf[T Element]() ComponentType {
	var zero T

	switch any(zero).(type) {
	case int8:
		return TypeInt8
	case int16:
		return TypeInt16
	case uint16:
		return TypeUint16
	case int32:
		return TypeInt32
	case int64:
		return TypeInt64
	case float32:
		return TypeFloat32
	default:
		return TypeFloat64
	}
}
