package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_UsesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := WithLogger(t.Context(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithSubsystem(ctx, "buffers")
	ctx = With(ctx, "layout", "vertex")
	ctx = With(ctx, "stride", 24)

	Get(ctx).Info("packed")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "packed", record["msg"])
	assert.Equal(t, "buffers", record["subsystem"])
	assert.Equal(t, "vertex", record["layout"])
	assert.InDelta(t, 24, record["stride"], 0)
}

func TestGet_Muted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := WithLogger(t.Context(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithMuted(ctx, true)

	Get(ctx).Error("should not appear")

	assert.Empty(t, buf.String())
	assert.False(t, Get(ctx).Enabled(ctx, slog.LevelError))
}

func TestGet_NilContexts(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck
	assert.NotNil(t, Get(nil, nil))
	assert.NotNil(t, Get())
	assert.Equal(t, With(context.Background()), context.Background())
}

func TestGet_WithSlogt(t *testing.T) {
	t.Parallel()

	ctx := WithLogger(t.Context(), slogt.New(t))
	ctx = With(ctx, "component", "x")

	// Output is routed to t.Log.
	Get(ctx).Debug("component read", "value", 1.5)
	Get(ctx).Warn("component not finite", "error", AnnotateError(ErrInvalidLogSetting, "index", 2))
}

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		subsystem.Store("")
	})

	var buf bytes.Buffer

	log := ConfigureLoggingWithOptions(Options{
		Subsystem: "tuples",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	log.Debug("configured")
	Get().Info("from default")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var second map[string]any

	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "tuples", second["subsystem"])
	assert.Equal(t, "tuples", GetSubsystem(t.Context()))
}

func TestConfigureLogging_Env(t *testing.T) { //nolint:paralleltest
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_OUTPUT", "stderr")

	var buf bytes.Buffer

	log, err := ConfigureLogging("tuples", WithOutput(&buf))
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)

	t.Setenv("LOG_JSON", "maybe")

	_, err = ConfigureLogging("tuples")
	require.ErrorIs(t, err, ErrInvalidLogSetting)

	t.Setenv("LOG_JSON", "false")
	t.Setenv("LOG_OUTPUT", "syslog")

	_, err = ConfigureLogging("tuples")
	require.ErrorIs(t, err, ErrInvalidLogSetting)
}
