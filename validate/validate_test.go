package validate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	commonErrors "github.com/amp-labs/amp-tuples/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStrideRequired = errors.New("stride is required")

type strideOptions struct {
	Stride int
}

func (s strideOptions) Validate() error {
	if s.Stride <= 0 {
		return errStrideRequired
	}

	return nil
}

type ctxOptions struct {
	Name string
}

func (c *ctxOptions) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.Name == "" {
		return errStrideRequired
	}

	return nil
}

type panicky struct{}

func (panicky) Validate() error {
	panic("layout exploded")
}

type plain struct{}

func TestValidate_HasValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(t.Context(), strideOptions{Stride: 12}))

	err := Validate(t.Context(), strideOptions{})
	require.Error(t, err)
	require.ErrorIs(t, err, commonErrors.ErrValidation)
	require.ErrorIs(t, err, errStrideRequired)
}

func TestValidate_HasValidateWithContext(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(t.Context(), &ctxOptions{Name: "position"}))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := Validate(ctx, &ctxOptions{Name: "position"})
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, commonErrors.ErrValidation)
}

func TestValidate_NilAndUnsupported(t *testing.T) {
	t.Parallel()

	var nilOpts *ctxOptions

	require.NoError(t, Validate(t.Context(), nil))
	require.NoError(t, Validate(t.Context(), nilOpts))
	require.NoError(t, Validate(t.Context(), plain{}))
	require.NoError(t, Validate(nil, plain{})) //nolint:staticcheck
}

func TestValidate_PanicRecovery(t *testing.T) {
	t.Parallel()

	err := Validate(t.Context(), panicky{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
	assert.Contains(t, err.Error(), "layout exploded")
}

func TestValidate_ErrorWrapping(t *testing.T) {
	t.Parallel()

	assert.True(t, wantWrappedErrors(t.Context()), "default should be true")

	wrapped := WithWrappedError(t.Context(), true)
	require.ErrorIs(t, Validate(wrapped, strideOptions{}), commonErrors.ErrValidation)

	unwrapped := WithWrappedError(t.Context(), false)
	err := Validate(unwrapped, strideOptions{})
	require.ErrorIs(t, err, errStrideRequired)
	require.NotErrorIs(t, err, commonErrors.ErrValidation)

	// Child contexts inherit the preference.
	child := context.WithValue(unwrapped, contextKey("other"), 1)
	assert.False(t, wantWrappedErrors(child))
}

func TestValidate_Funcs(t *testing.T) {
	t.Parallel()

	calls := 0

	require.NoError(t, Validate(t.Context(), Func(func() error {
		calls++

		return nil
	})))
	assert.Equal(t, 1, calls)

	require.ErrorIs(t, Validate(t.Context(), Func(func() error { return errStrideRequired })), errStrideRequired)
	require.NoError(t, Validate(t.Context(), Func(nil)))

	type key struct{}

	ctx := context.WithValue(t.Context(), key{}, "seen")

	require.NoError(t, Validate(ctx, FuncWithContext(func(ctx context.Context) error {
		if ctx.Value(key{}) != "seen" {
			return errStrideRequired
		}

		return nil
	})))
	require.NoError(t, Validate(ctx, FuncWithContext(nil)))
}

func TestValidate_Metrics(t *testing.T) { //nolint:paralleltest
	before := testutil.ToFloat64(validationsTotal.WithLabelValues("true", "true"))

	require.Error(t, Validate(t.Context(), strideOptions{}))

	after := testutil.ToFloat64(validationsTotal.WithLabelValues("true", "true"))
	assert.GreaterOrEqual(t, after-before, 1.0)
}

func BenchmarkValidate(b *testing.B) {
	ctx := context.Background()
	opts := strideOptions{Stride: 12}

	for b.Loop() {
		_ = Validate(ctx, opts)
	}
}

func ExampleValidate() {
	err := Validate(context.Background(), strideOptions{Stride: 0})

	fmt.Println(err)
	fmt.Println(errors.Is(err, commonErrors.ErrValidation))

	// Output:
	// validation error: stride is required
	// true
}
