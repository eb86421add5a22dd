package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("keeps non-nil errors in order", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("x: %w", ErrNotFinite))
		c.Add(fmt.Errorf("z: %w", ErrNotFinite))

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
		assert.Contains(t, c.errors[0].Error(), "x:")
		assert.Contains(t, c.errors[1].Error(), "z:")
	})

	t.Run("drops nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(ErrBufferTooSmall)
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())

	// Clearing twice is harmless.
	c.Clear()
	assert.Empty(t, c.errors)
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty collection yields nil", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as-is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrIndexOutOfRange)

		assert.Same(t, ErrIndexOutOfRange, c.GetError()) //nolint:testifylint
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("component 0: %w", ErrNotFinite))
		c.Add(fmt.Errorf("layout: %w", ErrUnknownCodec))
		c.Add(ErrNilArgument)

		err := c.GetError()

		require.Error(t, err)
		require.ErrorIs(t, err, ErrNotFinite)
		require.ErrorIs(t, err, ErrUnknownCodec)
		require.ErrorIs(t, err, ErrNilArgument)
		assert.NotErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotImplemented, ErrWrongType, ErrValidation, ErrIndexOutOfRange,
		ErrBufferTooSmall, ErrNilArgument, ErrDimensionMismatch, ErrNotFinite, ErrUnknownCodec,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
