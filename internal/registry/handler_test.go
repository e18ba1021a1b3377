package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchHandlerBuffersRecordsUntilEndProcessing(t *testing.T) {
	var seen []any
	h := Batch(func(ctx *ExecContext, input []any) ([]any, error) {
		seen = input
		return input, nil
	})()

	require.NoError(t, h.BeginProcessing(nil))
	out, err := h.ProcessRecord(nil, "a")
	require.NoError(t, err)
	assert.Nil(t, out)
	_, err = h.ProcessRecord(nil, "b")
	require.NoError(t, err)

	assert.Nil(t, seen, "buffered fn must not run before EndProcessing")

	result, err := h.EndProcessing(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, result)
	assert.Equal(t, []any{"a", "b"}, seen)
}

func TestBatchHandlerIgnoresNilRecord(t *testing.T) {
	h := Batch(func(ctx *ExecContext, input []any) ([]any, error) {
		return []any{len(input)}, nil
	})()
	_, err := h.ProcessRecord(nil, nil)
	require.NoError(t, err)
	out, err := h.EndProcessing(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{0}, out)
}

func TestNewHandlerProducesIndependentInstances(t *testing.T) {
	r := New()
	RegisterBuiltins(r)
	d, ok := r.Lookup("اختبار-مصفوفة")
	require.True(t, ok)

	h1 := d.NewHandler()
	h2 := d.NewHandler()
	assert.NotSame(t, h1, h2)
}
