package buffers

import (
	"context"
	"encoding/binary"

	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/logger"
	"github.com/amp-labs/amp-tuples/validate"
	"go.uber.org/atomic"
)

// Stats is a snapshot of the allocations made through one Util.
type Stats struct {
	Allocations int64
	Bytes       int64
}

// Util creates buffers from an injected factory. It is safe for concurrent use.
type Util struct {
	factory Factory
	order   binary.ByteOrder
	codec   Codec

	allocations atomic.Int64
	bytes       atomic.Int64
}

// New validates opts and returns a Util using them.
func New(ctx context.Context, opts Options) (*Util, error) {
	opts = opts.withDefaults()

	if err := validate.Validate(ctx, opts); err != nil {
		return nil, err
	}

	logger.Get(ctx).Debug("Created buffer util",
		"order", opts.Order.String(),
		"codec", string(opts.Codec))

	return &Util{
		factory: opts.Factory,
		order:   opts.Order,
		codec:   opts.Codec,
	}, nil
}

// Order returns the byte order of buffers created by u.
func (u *Util) Order() binary.ByteOrder { return u.order } //nolint:ireturn

// Codec returns the codec used by Seal and Open.
func (u *Util) Codec() Codec { return u.codec }

// Stats returns the number of allocations and bytes requested so far.
func (u *Util) Stats() Stats {
	return Stats{
		Allocations: u.allocations.Load(),
		Bytes:       u.bytes.Load(),
	}
}

// Allocate returns an empty buffer of exactly size bytes, positioned at zero
// with the limit at its capacity.
func (u *Util) Allocate(size int) *Buffer {
	assert.True(size >= 0, "negative buffer size %d", size)

	data := u.factory.Allocate(size)
	assert.NoError(validate.MinLength("allocated storage", len(data), size))

	u.allocations.Inc()
	u.bytes.Add(int64(size))
	allocationsTotal.Inc()
	allocatedBytesTotal.Add(float64(size))

	return wrap(data[:size:size], u.order)
}

// The typed creators allocate a buffer sized for values, write them in
// order and flip the buffer so it is ready to read.

func (u *Util) Bytes(values ...byte) *Buffer {
	return u.Allocate(len(values)).PutBytes(values).Flip()
}

func (u *Util) Int8s(values ...int8) *Buffer {
	return fill(u, values)
}

func (u *Util) Int16s(values ...int16) *Buffer {
	return fill(u, values)
}

func (u *Util) Uint16s(values ...uint16) *Buffer {
	return fill(u, values)
}

func (u *Util) Int32s(values ...int32) *Buffer {
	return fill(u, values)
}

func (u *Util) Int64s(values ...int64) *Buffer {
	return fill(u, values)
}

func (u *Util) Float32s(values ...float32) *Buffer {
	return fill(u, values)
}

func (u *Util) Float64s(values ...float64) *Buffer {
	return fill(u, values)
}

// Seal compresses the readable bytes of b with the configured codec.
func (u *Util) Seal(b *Buffer) ([]byte, error) {
	assert.NotNil("buffer", b)

	return Compress(u.codec, b.Bytes())
}

// Open decompresses data sealed by a Util with the same codec into a new
// buffer ready to read.
func (u *Util) Open(data []byte) (*Buffer, error) {
	raw, err := Decompress(u.codec, data)
	if err != nil {
		return nil, err
	}

	return u.Bytes(raw...), nil
}

func fill[T Element](u *Util, values []T) *Buffer {
	b := u.Allocate(len(values) * elementSize[T]())

	for _, v := range values {
		put(b, v)
	}

	return b.Flip()
}
