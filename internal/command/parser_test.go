package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, line string, lookup VariableLookup) ParseResult {
	t.Helper()
	tok := NewTokenizer(line)
	tokens := tok.Tokenize()
	p := NewParser(tokens, lookup)
	return p.Parse()
}

func TestParseSingleStage(t *testing.T) {
	res := parse(t, "اطبع مرحبا", nil)
	require.Len(t, res.Statements, 1)
	require.Len(t, res.Statements[0].Stages, 1)
	stage := res.Statements[0].Stages[0]
	assert.Equal(t, "اطبع", stage.CommandName)
	require.Len(t, stage.Arguments, 1)
	assert.Equal(t, "مرحبا", stage.Arguments[0].Literal)
}

func TestParsePipeline(t *testing.T) {
	res := parse(t, "اعرض | اطبع", nil)
	require.Len(t, res.Statements, 1)
	require.Len(t, res.Statements[0].Stages, 2)
	assert.Equal(t, "اعرض", res.Statements[0].Stages[0].CommandName)
	assert.Equal(t, "اطبع", res.Statements[0].Stages[1].CommandName)
}

func TestParseStatementSeparator(t *testing.T) {
	res := parse(t, "اطبع a ; اطبع b", nil)
	require.Len(t, res.Statements, 2)
	assert.Equal(t, "a", res.Statements[0].Stages[0].Arguments[0].Literal)
	assert.Equal(t, "b", res.Statements[1].Stages[0].Arguments[0].Literal)
}

func TestParseSwitchParameter(t *testing.T) {
	res := parse(t, "اعرض -مخفي", nil)
	stage := res.Statements[0].Stages[0]
	pv, ok := stage.Parameters["مخفي"]
	require.True(t, ok)
	assert.True(t, pv.IsSwitch)
	assert.True(t, pv.Bool)
}

func TestParseNamedParameterWithValue(t *testing.T) {
	res := parse(t, "انتقل -المسار /tmp", nil)
	stage := res.Statements[0].Stages[0]
	pv, ok := stage.Parameters["المسار"]
	require.True(t, ok)
	assert.False(t, pv.IsSwitch)
	assert.Equal(t, "/tmp", pv.Value.Literal)
}

func TestParseNamedParameterFalseLiteral(t *testing.T) {
	res := parse(t, "اختبار -فعال false", nil)
	stage := res.Statements[0].Stages[0]
	pv, ok := stage.Parameters["فعال"]
	require.True(t, ok)
	assert.True(t, pv.IsSwitch)
	assert.False(t, pv.Bool)
}

func TestParseSubExpressionArgument(t *testing.T) {
	res := parse(t, "اطبع $(اعرض)", nil)
	stage := res.Statements[0].Stages[0]
	require.Len(t, stage.Arguments, 1)
	arg := stage.Arguments[0]
	require.True(t, arg.IsSubExpression())
	require.Len(t, arg.SubExpr, 1)
	assert.Equal(t, "اعرض", arg.SubExpr[0].Stages[0].CommandName)
}

func TestParseNestedSubExpressionAsParameterValue(t *testing.T) {
	res := parse(t, "انتقل -المسار $(اطبع /tmp)", nil)
	stage := res.Statements[0].Stages[0]
	pv := stage.Parameters["المسار"]
	require.True(t, pv.Value.IsSubExpression())
	assert.Equal(t, "اطبع", pv.Value.SubExpr[0].Stages[0].CommandName)
}

func TestParseTypeLiteralArgument(t *testing.T) {
	res := parse(t, "اختبار-نوع [نص]", nil)
	stage := res.Statements[0].Stages[0]
	require.Len(t, stage.Arguments, 1)
	assert.True(t, stage.Arguments[0].IsTypeLiteral)
	assert.Equal(t, "نص", stage.Arguments[0].Literal)
}

func TestParseVariableExpansionBareAndQuoted(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "x" {
			return "val", true
		}
		return "", false
	}
	res := parse(t, `اطبع $x "before $x after"`, lookup)
	stage := res.Statements[0].Stages[0]
	require.Len(t, stage.Arguments, 2)
	assert.Equal(t, "val", stage.Arguments[0].Literal)
	assert.Equal(t, "before val after", stage.Arguments[1].Literal)
}

func TestParseUndefinedVariableExpandsEmpty(t *testing.T) {
	res := parse(t, "اطبع $missing", nil)
	stage := res.Statements[0].Stages[0]
	assert.Equal(t, "", stage.Arguments[0].Literal)
}

func TestParseRedirectionAppend(t *testing.T) {
	res := parse(t, "اعرض >> out.txt", nil)
	stage := res.Statements[0].Stages[0]
	require.Len(t, stage.Redirections, 1)
	r := stage.Redirections[0]
	assert.True(t, r.Append)
	assert.Equal(t, FilePath, r.TargetType)
	assert.Equal(t, "out.txt", r.Target)
	assert.Equal(t, 1, r.SourceStreamHandle)
}

func TestParseRedirectionStreamHandleMerge(t *testing.T) {
	res := parse(t, "اعرض 2>&1", nil)
	stage := res.Statements[0].Stages[0]
	require.Len(t, stage.Redirections, 1)
	r := stage.Redirections[0]
	assert.Equal(t, 2, r.SourceStreamHandle)
	assert.Equal(t, StreamHandle, r.TargetType)
	assert.Equal(t, "1", r.Target)
}

func TestParseInputRedirection(t *testing.T) {
	res := parse(t, "اعرض < in.txt", nil)
	stage := res.Statements[0].Stages[0]
	assert.Equal(t, "in.txt", stage.InputRedirectPath)
	assert.Empty(t, stage.Redirections)
}

func TestParseInputRedirectionAlongsideOutputRedirection(t *testing.T) {
	res := parse(t, "اعرض < in.txt > out.txt", nil)
	stage := res.Statements[0].Stages[0]
	assert.Equal(t, "in.txt", stage.InputRedirectPath)
	require.Len(t, stage.Redirections, 1)
	assert.Equal(t, "out.txt", stage.Redirections[0].Target)
}

func TestParseUnmatchedGroupEndWarns(t *testing.T) {
	res := parse(t, "اطبع a )", nil)
	assert.NotEmpty(t, res.Warnings)
}

func TestParseUnterminatedSubExpressionWarns(t *testing.T) {
	tok := NewTokenizer("اطبع $(اعرض")
	tokens := tok.Tokenize()
	p := NewParser(tokens, nil)
	res := p.Parse()
	require.NotEmpty(t, res.Warnings)
}
