package buffers

import (
	"testing"

	"github.com/amp-labs/amp-tuples/logger"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

func newUtil(t *testing.T, opts Options) *Util {
	t.Helper()

	if opts.Factory == nil {
		opts.Factory = HeapFactory{}
	}

	ctx := logger.WithLogger(t.Context(), slogt.New(t))

	u, err := New(ctx, opts)
	require.NoError(t, err)

	return u
}

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T: %v", r, r)
		require.ErrorIs(t, err, target)
	}()

	fn()
}
