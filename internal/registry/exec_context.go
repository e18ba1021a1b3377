package registry

import (
	"fmt"
	"io"
	"strings"

	"github.com/arbsh/arbsh/internal/binder"
	"github.com/arbsh/arbsh/internal/command"
	"github.com/arbsh/arbsh/internal/session"
)

// ExecContext is the per-stage execution environment a Handler runs
// in: the session it can read or mutate, the stage's own arguments
// and named parameters, and the streams it writes diagnostics to.
type ExecContext struct {
	Session *session.State

	Arguments  []command.Argument
	Parameters map[string]command.ParamValue

	// Bound is the result of running ParameterBinder against this
	// stage's declared Params, populated by the executor before
	// BeginProcessing. Handlers declaring Params should prefer reading
	// from Bound over the raw Arguments/Parameters above.
	Bound *binder.Bound

	Stdout io.Writer
	Stderr io.Writer

	// Eval runs a nested sub-expression (command.Statement list) and
	// returns the flattened objects its last stage produced. Builtins
	// that accept $(...) arguments call this to resolve them; it is
	// supplied by the executor so the registry package stays free of
	// an import cycle back to internal/exec.
	Eval func(stmts []command.Statement) ([]any, error)
}

// Arg returns the literal text of the nth positional argument,
// resolving a sub-expression through Eval and joining the string forms
// of all its objects with single spaces (joinObjects). ok is false if
// there is no nth argument, or a sub-expression fails or yields nothing.
func (c *ExecContext) Arg(n int) (string, bool) {
	if n < 0 || n >= len(c.Arguments) {
		return "", false
	}
	a := c.Arguments[n]
	if !a.IsSubExpression() {
		return a.Literal, true
	}
	if c.Eval == nil {
		return "", false
	}
	objs, err := c.Eval(a.SubExpr)
	if err != nil || len(objs) == 0 {
		return "", false
	}
	return joinObjects(objs), true
}

// Param returns a named parameter's resolved string value. ok is
// false if the parameter was not supplied or was a bare switch.
func (c *ExecContext) Param(name string) (string, bool) {
	pv, ok := c.Parameters[name]
	if !ok || pv.IsSwitch {
		return "", false
	}
	if !pv.Value.IsSubExpression() {
		return pv.Value.Literal, true
	}
	if c.Eval == nil {
		return "", false
	}
	objs, err := c.Eval(pv.Value.SubExpr)
	if err != nil || len(objs) == 0 {
		return "", false
	}
	return joinObjects(objs), true
}

// Switch reports whether a named boolean switch parameter is present
// and its value, defaulting to false when absent.
func (c *ExecContext) Switch(name string) bool {
	pv, ok := c.Parameters[name]
	return ok && pv.IsSwitch && pv.Bool
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// joinObjects renders a sub-expression's output objects as a single
// string, space-separated, per spec §9's recommended (not mandated)
// sub-expression conversion.
func joinObjects(objs []any) string {
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = toString(o)
	}
	return strings.Join(parts, " ")
}
