package buffers

import "encoding/binary"

// Element is the set of component types a buffer can hold.
type Element interface {
	int8 | int16 | uint16 | int32 | int64 | float32 | float64
}

func elementSize[T Element]() int {
	var zero T

	return binary.Size(zero)
}

func put[T Element](b *Buffer, v T) {
	switch x := any(v).(type) {
	case int8:
		b.PutInt8(x)
	case int16:
		b.PutInt16(x)
	case uint16:
		b.PutUint16(x)
	case int32:
		b.PutInt32(x)
	case int64:
		b.PutInt64(x)
	case float32:
		b.PutFloat32(x)
	case float64:
		b.PutFloat64(x)
	}
}

func get[T Element](b *Buffer) T { //nolint:ireturn
	var (
		zero T
		out  any
	)

	switch any(zero).(type) {
	case int8:
		out = b.GetInt8()
	case int16:
		out = b.GetInt16()
	case uint16:
		out = b.GetUint16()
	case int32:
		out = b.GetInt32()
	case int64:
		out = b.GetInt64()
	case float32:
		out = b.GetFloat32()
	case float64:
		out = b.GetFloat64()
	}

	return out.(T) //nolint:forcetypeassert
}
