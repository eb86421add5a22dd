package buffers

import (
	"encoding/binary"
	"math"

	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/validate"
)

// Buffer is a position/limit cursor over a fixed byte slice. Puts and gets
// advance the position. Running past the limit panics with an error wrapping
// errors.ErrBufferTooSmall and leaves the buffer unchanged.
type Buffer struct {
	data     []byte
	position int
	limit    int
	order    binary.ByteOrder
}

func wrap(data []byte, order binary.ByteOrder) *Buffer {
	return &Buffer{data: data, limit: len(data), order: order}
}

// Capacity returns the size of the backing storage.
func (b *Buffer) Capacity() int { return len(b.data) }

// Position returns the index of the next byte to be read or written.
func (b *Buffer) Position() int { return b.position }

// Limit returns the index of the first byte that may not be read or written.
func (b *Buffer) Limit() int { return b.limit }

// Remaining returns the number of bytes between the position and the limit.
func (b *Buffer) Remaining() int { return b.limit - b.position }

// Order returns the byte order used for multi-byte values.
func (b *Buffer) Order() binary.ByteOrder { return b.order } //nolint:ireturn

// Flip sets the limit to the current position and rewinds, switching from
// writing to reading.
func (b *Buffer) Flip() *Buffer {
	b.limit = b.position
	b.position = 0

	return b
}

// Rewind resets the position to zero and keeps the limit.
func (b *Buffer) Rewind() *Buffer {
	b.position = 0

	return b
}

// Clear resets the position to zero and the limit to the capacity.
func (b *Buffer) Clear() *Buffer {
	b.position = 0
	b.limit = len(b.data)

	return b
}

// Bytes returns the bytes between the position and the limit. The slice
// aliases the buffer storage.
func (b *Buffer) Bytes() []byte {
	return b.data[b.position:b.limit]
}

func (b *Buffer) next(n int) []byte {
	assert.NoError(validate.MinLength("remaining buffer", b.Remaining(), n))

	out := b.data[b.position : b.position+n]
	b.position += n

	return out
}

func (b *Buffer) PutInt8(v int8) *Buffer {
	b.next(1)[0] = byte(v)

	return b
}

func (b *Buffer) PutInt16(v int16) *Buffer {
	b.order.PutUint16(b.next(2), uint16(v)) //nolint:gosec,mnd

	return b
}

func (b *Buffer) PutUint16(v uint16) *Buffer {
	b.order.PutUint16(b.next(2), v) //nolint:mnd

	return b
}

func (b *Buffer) PutInt32(v int32) *Buffer {
	b.order.PutUint32(b.next(4), uint32(v)) //nolint:gosec,mnd

	return b
}

func (b *Buffer) PutInt64(v int64) *Buffer {
	b.order.PutUint64(b.next(8), uint64(v)) //nolint:gosec,mnd

	return b
}

func (b *Buffer) PutFloat32(v float32) *Buffer {
	b.order.PutUint32(b.next(4), math.Float32bits(v)) //nolint:mnd

	return b
}

func (b *Buffer) PutFloat64(v float64) *Buffer {
	b.order.PutUint64(b.next(8), math.Float64bits(v)) //nolint:mnd

	return b
}

// PutBytes copies p into the buffer.
func (b *Buffer) PutBytes(p []byte) *Buffer {
	copy(b.next(len(p)), p)

	return b
}

func (b *Buffer) GetInt8() int8 {
	return int8(b.next(1)[0])
}

func (b *Buffer) GetInt16() int16 {
	return int16(b.order.Uint16(b.next(2))) //nolint:gosec,mnd
}

func (b *Buffer) GetUint16() uint16 {
	return b.order.Uint16(b.next(2)) //nolint:mnd
}

func (b *Buffer) GetInt32() int32 {
	return int32(b.order.Uint32(b.next(4))) //nolint:gosec,mnd
}

func (b *Buffer) GetInt64() int64 {
	return int64(b.order.Uint64(b.next(8))) //nolint:gosec,mnd
}

func (b *Buffer) GetFloat32() float32 {
	return math.Float32frombits(b.order.Uint32(b.next(4))) //nolint:mnd
}

func (b *Buffer) GetFloat64() float64 {
	return math.Float64frombits(b.order.Uint64(b.next(8))) //nolint:mnd
}
