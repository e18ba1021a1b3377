package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbsh/arbsh/internal/command"
)

func parseOne(t *testing.T, line string) command.ParsedCommand {
	t.Helper()
	tok := command.NewTokenizer(line)
	p := command.NewParser(tok.Tokenize(), nil)
	res := p.Parse()
	require.Len(t, res.Statements, 1)
	require.Len(t, res.Statements[0].Stages, 1)
	return res.Statements[0].Stages[0]
}

func TestBindNamedParameterByArabicName(t *testing.T) {
	cmd := parseOne(t, "انتقل -المسار /tmp")
	specs := []ParamSpec{{Name: "المسار", EnglishAlias: "path", Mandatory: true, Positional: true}}
	b, err := Bind(specs, cmd)
	require.NoError(t, err)
	assert.Equal(t, "/tmp", b.Values["المسار"].Literal())
}

func TestBindPositionalFallback(t *testing.T) {
	cmd := parseOne(t, "انتقل /tmp")
	specs := []ParamSpec{{Name: "المسار", EnglishAlias: "path", Mandatory: true, Positional: true}}
	b, err := Bind(specs, cmd)
	require.NoError(t, err)
	assert.Equal(t, "/tmp", b.Values["المسار"].Literal())
}

func TestBindMissingMandatoryErrors(t *testing.T) {
	cmd := parseOne(t, "انتقل")
	specs := []ParamSpec{{Name: "المسار", EnglishAlias: "path", Mandatory: true, Positional: true}}
	_, err := Bind(specs, cmd)
	require.Error(t, err)
	var be *BindError
	require.ErrorAs(t, err, &be)
}

func TestBindSwitchFromBareFlag(t *testing.T) {
	cmd := parseOne(t, "اعرض -مخفي")
	specs := []ParamSpec{{Name: "مخفي", IsSwitch: true}}
	b, err := Bind(specs, cmd)
	require.NoError(t, err)
	assert.True(t, b.Values["مخفي"].IsSwitch)
	assert.True(t, b.Values["مخفي"].Bool)
}

func TestBindSwitchWithExplicitFalse(t *testing.T) {
	cmd := parseOne(t, "اعرض -مخفي false")
	specs := []ParamSpec{{Name: "مخفي", IsSwitch: true}}
	b, err := Bind(specs, cmd)
	require.NoError(t, err)
	assert.False(t, b.Values["مخفي"].Bool)
}

func TestBindNamedNonSwitchWithoutValueErrors(t *testing.T) {
	cmd := parseOne(t, "انتقل -المسار -آخر")
	specs := []ParamSpec{{Name: "المسار", EnglishAlias: "path"}}
	_, err := Bind(specs, cmd)
	require.Error(t, err)
}

func TestBindArrayParameterConsumesRemainingPositionals(t *testing.T) {
	cmd := parseOne(t, "اطبع a b c")
	specs := []ParamSpec{{Name: "القيم", Positional: true, IsArray: true}}
	b, err := Bind(specs, cmd)
	require.NoError(t, err)
	require.Len(t, b.Values["القيم"].Args, 3)
	assert.Equal(t, "c", b.Values["القيم"].Args[2].Literal)
}

func TestBindUnusedPositionalWarnsUnlessTypeLiteral(t *testing.T) {
	cmd := parseOne(t, "اطبع a b")
	specs := []ParamSpec{{Name: "اول", Positional: true}}
	b, err := Bind(specs, cmd)
	require.NoError(t, err)
	assert.NotEmpty(t, b.Warnings)
}

func TestBindUnusedTypeLiteralPositionalDoesNotWarn(t *testing.T) {
	cmd := parseOne(t, "اختبار-نوع [نص]")
	specs := []ParamSpec{}
	b, err := Bind(specs, cmd)
	require.NoError(t, err)
	assert.Empty(t, b.Warnings)
}

type sampleRecord struct {
	Name string
	Size int
}

func TestBindPipelineObjectDirect(t *testing.T) {
	b := &Bound{Values: map[string]BoundValue{}}
	specs := []ParamSpec{{Name: "القيمة", ValueFromPipeline: true}}
	b.BindPipelineObject(specs, "piped-value")
	assert.Equal(t, "piped-value", b.Values["القيمة"].Literal())
}

func TestBindPipelineObjectByPropertyName(t *testing.T) {
	b := &Bound{Values: map[string]BoundValue{}}
	specs := []ParamSpec{{Name: "Name", ValueFromPipelineByPropertyName: true}}
	b.BindPipelineObject(specs, sampleRecord{Name: "entry.txt", Size: 10})
	assert.Equal(t, "entry.txt", b.Values["Name"].Literal())
}

func TestConvertStringToNumber(t *testing.T) {
	v, err := ConvertString("3.5", "number")
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestConvertStringToNumberFailure(t *testing.T) {
	_, err := ConvertString("not-a-number", "number")
	require.Error(t, err)
}
