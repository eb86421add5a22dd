package tuple

import (
	"crypto/sha256"
	"math"
	"testing"

	"github.com/amp-labs/amp-tuples/errors"
	"github.com/amp-labs/amp-tuples/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateHash(t *testing.T) {
	t.Parallel()

	a, err := hashing.Sha256(NewVec3[int32](1, 23, 4))
	require.NoError(t, err)

	b, err := hashing.Sha256(NewVec3[int32](12, 3, 4))
	require.NoError(t, err)

	c, err := hashing.Sha256(NewVec3[int32](1, 23, 4))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
}

func TestUpdateHash_DimensionIsPartOfTheHash(t *testing.T) {
	t.Parallel()

	h2, err := hashing.Xxh3(NewVec2(0.0, 0.0))
	require.NoError(t, err)

	h3, err := hashing.Xxh3(NewVec3(0.0, 0.0, 0.0))
	require.NoError(t, err)

	h4, err := hashing.Xxhash64(NewVec4(0.0, 0.0, 0.0, 0.0))
	require.NoError(t, err)

	assert.NotEqual(t, h2, h3)
	assert.Len(t, h4, 16)
}

func TestHash_WritesIndexOrder(t *testing.T) {
	t.Parallel()

	h := sha256.New()
	require.NoError(t, Hash[string](NewVec2("x", "y"), h))

	expected := sha256.Sum256([]byte("2\x1fx\x1fy\x1f"))
	assert.Equal(t, expected[:], h.Sum(nil))
}

func TestUpdateHash_AgreesWithEqualOnNegativeZero(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)

	a := NewVec2(0.0, 0.0)
	b := NewVec2(negZero, 0.0)
	require.True(t, Equal[float64](a, b))

	ha, err := hashing.Sha256(a)
	require.NoError(t, err)

	hb, err := hashing.Sha256(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)

	fa, err := hashing.Xxh3(NewVec3[float32](0, 1, 0))
	require.NoError(t, err)

	fb, err := hashing.Xxh3(NewVec3(float32(negZero), 1, float32(negZero)))
	require.NoError(t, err)

	assert.Equal(t, fa, fb)
}

func TestUpdateHash_DistinguishesValues(t *testing.T) {
	t.Parallel()

	zero, err := hashing.Sha256(NewVec2(0.0, 0.0))
	require.NoError(t, err)

	tiny, err := hashing.Sha256(NewVec2(math.SmallestNonzeroFloat64, 0.0))
	require.NoError(t, err)

	assert.NotEqual(t, zero, tiny)
}

func TestHash_NilArguments(t *testing.T) {
	t.Parallel()

	requirePanicsWith(t, errors.ErrNilArgument, func() {
		_ = Hash[int32](nil, sha256.New())
	})

	requirePanicsWith(t, errors.ErrNilArgument, func() {
		_ = Hash[int32](NewVec2[int32](1, 2), nil)
	})
}
