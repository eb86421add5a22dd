package buffers

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/amp-labs/amp-tuples/errors"
	"github.com/stretchr/testify/assert"
)

func TestBuffer_PutGetRoundTrip(t *testing.T) {
	t.Parallel()

	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			t.Parallel()

			b := wrap(make([]byte, 64), order)

			b.PutInt8(-3).
				PutInt16(-1234).
				PutUint16('λ').
				PutInt32(math.MinInt32).
				PutInt64(math.MaxInt64).
				PutFloat32(1.5).
				PutFloat64(math.Inf(-1))

			assert.Equal(t, 1+2+2+4+8+4+8, b.Position())

			b.Flip()

			assert.Equal(t, int8(-3), b.GetInt8())
			assert.Equal(t, int16(-1234), b.GetInt16())
			assert.Equal(t, uint16('λ'), b.GetUint16())
			assert.Equal(t, int32(math.MinInt32), b.GetInt32())
			assert.Equal(t, int64(math.MaxInt64), b.GetInt64())
			assert.InDelta(t, float32(1.5), b.GetFloat32(), 0)
			assert.True(t, math.IsInf(b.GetFloat64(), -1))
			assert.Zero(t, b.Remaining())
		})
	}
}

func TestBuffer_ByteOrder(t *testing.T) {
	t.Parallel()

	big := wrap(make([]byte, 4), binary.BigEndian).PutInt32(1).Flip()
	little := wrap(make([]byte, 4), binary.LittleEndian).PutInt32(1).Flip()

	assert.Equal(t, []byte{0, 0, 0, 1}, big.Bytes())
	assert.Equal(t, []byte{1, 0, 0, 0}, little.Bytes())
}

func TestBuffer_Cursor(t *testing.T) {
	t.Parallel()

	b := wrap(make([]byte, 8), binary.BigEndian)

	assert.Equal(t, 8, b.Capacity())
	assert.Equal(t, 8, b.Limit())
	assert.Equal(t, 8, b.Remaining())

	b.PutInt16(7).PutInt16(8)
	assert.Equal(t, 4, b.Position())

	b.Flip()
	assert.Equal(t, 0, b.Position())
	assert.Equal(t, 4, b.Limit())
	assert.Equal(t, []byte{0, 7, 0, 8}, b.Bytes())

	assert.Equal(t, int16(7), b.GetInt16())
	b.Rewind()
	assert.Equal(t, int16(7), b.GetInt16())

	b.Clear()
	assert.Equal(t, 0, b.Position())
	assert.Equal(t, 8, b.Limit())
}

func TestBuffer_OverflowPanicsWithoutMoving(t *testing.T) {
	t.Parallel()

	b := wrap(make([]byte, 6), binary.BigEndian)
	b.PutInt32(42)

	requirePanicsWith(t, errors.ErrBufferTooSmall, func() { b.PutInt64(1) })
	assert.Equal(t, 4, b.Position())

	b.Flip()
	b.GetInt32()

	requirePanicsWith(t, errors.ErrBufferTooSmall, func() { b.GetInt8() })
	assert.Equal(t, 4, b.Position())
}
