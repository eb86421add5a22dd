package hashing

import (
	"errors"
	"fmt"
	"hash"
	"testing"

	"github.com/OneOfOne/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

var errHashTest = errors.New("hash test error")

type failingHashable struct{}

func (failingHashable) UpdateHash(hash.Hash) error {
	return errHashTest
}

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:     "simple bytes",
			input:    HashableBytes("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestXxh3(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "hello", "(1, 2, 3)"} {
		got, err := Xxh3(HashableString(input))
		require.NoError(t, err)
		assert.Len(t, got, 16)
		assert.Equal(t, fmt.Sprintf("%016x", xxh3.HashString(input)), got)
	}
}

func TestXxhash64(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "hello", "(1, 2, 3)"} {
		got, err := Xxhash64(HashableBytes(input))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%016x", xxhash.Checksum64([]byte(input))), got)
	}
}

func TestHashFuncs_Error(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]HashFunc{"sha256": Sha256, "xxh3": Xxh3, "xxhash64": Xxhash64} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := fn(failingHashable{})
			require.ErrorIs(t, err, errHashTest)
			assert.Empty(t, result)
		})
	}
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, HashableString("a").Equals("a"))
	assert.False(t, HashableString("a").Equals("b"))
	assert.Equal(t, "a", HashableString("a").String())

	assert.True(t, HashableBytes("ab").Equals(HashableBytes("ab")))
	assert.False(t, HashableBytes("ab").Equals(nil))
}

func TestDifferentInputsProduceDifferentHashes(t *testing.T) {
	t.Parallel()

	for _, fn := range []HashFunc{Sha256, Xxh3, Xxhash64} {
		h1, err := fn(HashableString("(1, 2)"))
		require.NoError(t, err)

		h2, err := fn(HashableString("(2, 1)"))
		require.NoError(t, err)

		assert.NotEqual(t, h1, h2)
	}
}
