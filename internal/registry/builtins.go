package registry

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arbsh/arbsh/internal/binder"
)

// FileEntry is one row of اعرض's output: a directory listing object
// flowing through the pipeline, not a printed string.
type FileEntry struct {
	Name  string
	IsDir bool
	Size  int64
}

// String renders a FileEntry the way اطبع (and any plain-text sink)
// displays a pipeline object it doesn't otherwise know how to format.
func (f FileEntry) String() string {
	if f.IsDir {
		return fmt.Sprintf("%s/", f.Name)
	}
	return fmt.Sprintf("%-30s %8d", f.Name, f.Size)
}

// RegisterBuiltins installs the shell's builtin command set into r.
func RegisterBuiltins(r *Registry) {
	r.Register(Descriptor{
		Name:        "اطبع",
		Summary:     "writes its arguments, or its piped input, to standard output",
		AcceptsPipe: true,
		NewHandler:  Batch(handlePrint),
	})
	r.Register(Descriptor{
		Name:        "انتقل",
		EnglishName: "cd",
		Summary:     "changes the session's current directory",
		Parameters:  []string{"المسار"},
		Params: []binder.ParamSpec{
			{Name: "المسار", EnglishAlias: "path", Mandatory: true, Positional: true},
		},
		NewHandler: Batch(handleChangeDirectory),
	})
	r.Register(Descriptor{
		Name:       "المسار",
		Summary:    "reports the session's current directory",
		NewHandler: Batch(handlePrintWorkingDirectory),
	})
	r.Register(Descriptor{
		Name:       "اعرض",
		Summary:    "lists entries of the current directory",
		Parameters: []string{"مخفي"},
		Params: []binder.ParamSpec{
			{Name: "مخفي", IsSwitch: true},
		},
		NewHandler: Batch(handleList),
	})
	r.Register(Descriptor{
		Name:       "مساعدة",
		Summary:    "describes a command, or lists every registered command",
		Params:     []binder.ParamSpec{{Name: "اسم", Positional: true}},
		NewHandler: Batch(r.handleHelp),
	})
	r.Register(Descriptor{
		Name:       "الأوامر",
		Summary:    "lists every registered command name",
		NewHandler: Batch(r.handleCommandList),
	})
	r.Register(Descriptor{
		Name:    "اختبار-مصفوفة",
		Summary: "demonstrates array parameter binding: echoes every positional argument given, or a fixed sample if none",
		Params: []binder.ParamSpec{
			{Name: "عناصر", EnglishAlias: "items", Positional: true, IsArray: true},
		},
		NewHandler: Batch(handleTestArray),
	})
	r.Register(Descriptor{
		Name:        "خروج",
		EnglishName: "exit",
		Summary:     "ends the interactive session",
		NewHandler:  Batch(handleExit),
	})
	r.Register(Descriptor{
		Name:    "اختبار-نوع",
		Summary: "demonstrates type-literal parameter binding: reports the declared type of its argument",
		Params: []binder.ParamSpec{
			{Name: "القيمة", EnglishAlias: "value", Positional: true},
		},
		AcceptsPipe: true,
		NewHandler:  Batch(handleTestType),
	})
}

// handlePrint writes its arguments, or its piped input, onward into
// the output pipeline. It never writes to ctx.Stdout itself: only the
// executor's final-stage distributor decides where pipeline output
// ultimately lands (console or a redirection target).
func handlePrint(ctx *ExecContext, input []any) ([]any, error) {
	if len(input) > 0 {
		return input, nil
	}
	var out []any
	for i := range ctx.Arguments {
		v, _ := ctx.Arg(i)
		out = append(out, v)
	}
	return out, nil
}

func handleChangeDirectory(ctx *ExecContext, _ []any) ([]any, error) {
	var path string
	if ctx.Bound != nil {
		path = ctx.Bound.Values["المسار"].Literal()
	}
	if path == "" {
		if p, ok := ctx.Param("المسار"); ok {
			path = p
		} else if p, ok := ctx.Arg(0); ok {
			path = p
		}
	}
	if path == "" {
		return nil, fmt.Errorf("انتقل: missing -المسار argument")
	}
	if err := ctx.Session.ChangeDirectory(path); err != nil {
		return nil, fmt.Errorf("انتقل: %w", err)
	}
	return []any{ctx.Session.CurrentDirectory()}, nil
}

func handlePrintWorkingDirectory(ctx *ExecContext, _ []any) ([]any, error) {
	return []any{ctx.Session.CurrentDirectory()}, nil
}

// ErrExitRequested is returned by خروج's handler so the REPL driver can
// tell "the session asked to end" apart from an ordinary stage error.
var ErrExitRequested = fmt.Errorf("exit requested")

func handleExit(*ExecContext, []any) ([]any, error) {
	return nil, ErrExitRequested
}

func handleList(ctx *ExecContext, _ []any) ([]any, error) {
	includeHidden := ctx.Switch("مخفي")
	if ctx.Bound != nil {
		if bv, ok := ctx.Bound.Values["مخفي"]; ok {
			includeHidden = bv.Bool
		}
	}
	dir := ctx.Session.CurrentDirectory()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("اعرض: %w", err)
	}
	var out []any
	for _, e := range entries {
		if !includeHidden && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, FileEntry{Name: e.Name(), IsDir: e.IsDir(), Size: info.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].(FileEntry).Name < out[j].(FileEntry).Name
	})
	return out, nil
}

func (r *Registry) handleHelp(ctx *ExecContext, _ []any) ([]any, error) {
	if name, ok := ctx.Arg(0); ok {
		d, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("مساعدة: unknown command %q", name)
		}
		fmt.Fprintf(ctx.Stdout, "%s: %s\n", d.Name, d.Summary)
		if len(d.Parameters) > 0 {
			fmt.Fprintf(ctx.Stdout, "  parameters: %s\n", strings.Join(d.Parameters, ", "))
		}
		return []any{d.Summary}, nil
	}
	var out []any
	for _, d := range r.All() {
		fmt.Fprintf(ctx.Stdout, "%-20s %s\n", d.Name, d.Summary)
		out = append(out, d.Name)
	}
	return out, nil
}

func (r *Registry) handleCommandList(_ *ExecContext, _ []any) ([]any, error) {
	var out []any
	for _, d := range r.All() {
		out = append(out, d.Name)
	}
	return out, nil
}

func handleTestArray(ctx *ExecContext, _ []any) ([]any, error) {
	if ctx.Bound != nil {
		if bv, ok := ctx.Bound.Values["عناصر"]; ok && len(bv.Args) > 0 {
			out := make([]any, len(bv.Args))
			for i, a := range bv.Args {
				out[i] = a.Literal
			}
			return out, nil
		}
	}
	return []any{"alpha", "beta", "gamma"}, nil
}

func handleTestType(ctx *ExecContext, input []any) ([]any, error) {
	var out []any
	for _, v := range input {
		out = append(out, fmt.Sprintf("%T", v))
	}
	if len(out) == 0 && ctx.Bound != nil {
		if bv, ok := ctx.Bound.Values["القيمة"]; ok {
			kind := "string"
			if bv.Arg.IsTypeLiteral {
				kind = bv.Arg.Literal
			}
			out = append(out, kind)
		}
	}
	if len(out) == 0 {
		for i := range ctx.Arguments {
			v, _ := ctx.Arg(i)
			out = append(out, fmt.Sprintf("%T", v))
		}
	}
	return out, nil
}
