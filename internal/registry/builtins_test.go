package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbsh/arbsh/internal/command"
)

func TestHandlePrintFromArguments(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Arguments = []command.Argument{{Literal: "hello"}, {Literal: "world"}}
	objs, err := handlePrint(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, []any{"hello", "world"}, objs)
}

func TestHandlePrintFromPipedInput(t *testing.T) {
	ctx, _ := newTestContext(t)
	input := []any{"x", FileEntry{Name: "a", Size: 3}}
	objs, err := handlePrint(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input, objs)
}

func TestHandleExitReturnsSentinelError(t *testing.T) {
	ctx, _ := newTestContext(t)
	objs, err := handleExit(ctx, nil)
	assert.Nil(t, objs)
	assert.ErrorIs(t, err, ErrExitRequested)
}

func TestHandleChangeDirectoryUsesParam(t *testing.T) {
	ctx, _ := newTestContext(t)
	dest := t.TempDir()
	ctx.Parameters = map[string]command.ParamValue{
		"المسار": {Value: command.Argument{Literal: dest}},
	}
	objs, err := handleChangeDirectory(ctx, nil)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	want, err := filepath.Abs(dest)
	require.NoError(t, err)
	assert.Equal(t, want, ctx.Session.CurrentDirectory())
	assert.Equal(t, want, objs[0])
}

func TestHandleChangeDirectoryMissingArgErrors(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, err := handleChangeDirectory(ctx, nil)
	assert.Error(t, err)
}

func TestHandleListRespectsHiddenSwitch(t *testing.T) {
	ctx, _ := newTestContext(t)
	dir := ctx.Session.CurrentDirectory()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visible.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))

	objs, err := handleList(ctx, nil)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "visible.txt", objs[0].(FileEntry).Name)

	ctx.Parameters = map[string]command.ParamValue{"مخفي": {IsSwitch: true, Bool: true}}
	objs, err = handleList(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, objs, 2)
}

func TestHandleTestArrayReturnsThreeItems(t *testing.T) {
	ctx, _ := newTestContext(t)
	objs, err := handleTestArray(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, objs, 3)
}

func TestHandleTestTypeReportsGoType(t *testing.T) {
	ctx, _ := newTestContext(t)
	objs, err := handleTestType(ctx, []any{"s", 5, FileEntry{}})
	require.NoError(t, err)
	require.Len(t, objs, 3)
	assert.Equal(t, "string", objs[0])
	assert.Equal(t, "int", objs[1])
	assert.Equal(t, "registry.FileEntry", objs[2])
}

func TestHelpListsAllCommandsWhenNoArgument(t *testing.T) {
	r := New()
	RegisterBuiltins(r)
	ctx, out := newTestContext(t)
	objs, err := r.handleHelp(ctx, nil)
	require.NoError(t, err)
	assert.True(t, len(objs) >= 7)
	assert.Contains(t, out.String(), "اطبع")
}

func TestHelpDescribesSingleCommand(t *testing.T) {
	r := New()
	RegisterBuiltins(r)
	ctx, out := newTestContext(t)
	ctx.Arguments = []command.Argument{{Literal: "اطبع"}}
	_, err := r.handleHelp(ctx, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "standard output")
}
