package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	commonErrors "github.com/amp-labs/amp-tuples/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, AnnotateError(nil, "key", "value"))
	})

	t.Run("keeps message and chain", func(t *testing.T) {
		t.Parallel()

		err := AnnotateError(commonErrors.ErrUnknownCodec, "codec", "lzma")

		require.ErrorIs(t, err, commonErrors.ErrUnknownCodec)
		assert.Equal(t, "unknown codec", err.Error())

		var se *slogError

		require.ErrorAs(t, err, &se)
		require.Len(t, se.attrs, 1)
		assert.Equal(t, "codec", se.attrs[0].Key)
		assert.Equal(t, "lzma", se.attrs[0].Value.String())
	})
}

func TestSlogErrorLogger_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := slog.New(&slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)})

	plain := errors.New("plain failure") //nolint:err113
	annotated := AnnotateError(commonErrors.ErrBufferTooSmall, "needed", 12, "have", 8)

	log.Error("pack failed", "error", annotated, "other", plain, "n", 3)

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "pack failed", record["msg"])
	assert.Equal(t, "buffer too small", record["error"])
	assert.Equal(t, "plain failure", record["other"])
	assert.InDelta(t, 12, record["needed"], 0)
	assert.InDelta(t, 8, record["have"], 0)
	assert.InDelta(t, 3, record["n"], 0)
}

func TestSlogErrorLogger_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := &slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)}

	withAttrs, ok := base.WithAttrs([]slog.Attr{slog.String("layout", "vertex")}).(*slogErrorLogger)
	require.True(t, ok)

	slog.New(withAttrs).Info("hello", "error", AnnotateError(commonErrors.ErrNotFinite, "index", 1))

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "vertex", record["layout"])
	assert.InDelta(t, 1, record["index"], 0)

	_, ok = base.WithGroup("g").(*slogErrorLogger)
	assert.True(t, ok)
}
