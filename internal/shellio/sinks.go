// Package shellio wraps the shell's console destinations, adding the
// same kind of ANSI coloring the teacher's cli package applies to
// prompts and error text, generalized here to the pipeline distributor's
// regular-object vs error-object streams instead of a fixed set of
// prompt states.
package shellio

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Console holds the shell's stdout/stderr destinations plus whether
// each one is attached to a terminal. Coloring is only ever applied
// when the destination is a TTY, so redirected or piped output stays
// plain text.
type Console struct {
	Out       io.Writer
	Err       io.Writer
	outIsTerm bool
	errIsTerm bool

	regular *color.Color
	errText *color.Color
	warn    *color.Color
}

// NewConsole builds a Console around out/err, detecting terminal-ness
// via isatty when out/err are *os.File.
func NewConsole(out, err io.Writer) *Console {
	c := &Console{
		Out:       out,
		Err:       err,
		outIsTerm: isTerminal(out),
		errIsTerm: isTerminal(err),
	}
	c.regular = color.New(color.FgGreen)
	c.errText = color.New(color.FgRed, color.Bold)
	c.warn = color.New(color.FgYellow)
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteObject writes a single formatted pipeline object to dst,
// coloring it green when dst is a terminal attached to stdout.
func (c *Console) WriteObject(dst io.Writer, text string) {
	if dst == c.Out && c.outIsTerm {
		fmt.Fprintln(dst, c.regular.Sprint(text))
		return
	}
	fmt.Fprintln(dst, text)
}

// WriteError writes formatted error text to dst, colored red+bold
// when dst is a terminal attached to stderr.
func (c *Console) WriteError(dst io.Writer, text string) {
	if dst == c.Err && c.errIsTerm {
		fmt.Fprintln(dst, c.errText.Sprint(text))
		return
	}
	fmt.Fprintln(dst, text)
}

// WriteWarning writes a non-fatal diagnostic (binding warnings, parser
// warnings) to stderr, colored yellow on a terminal.
func (c *Console) WriteWarning(text string) {
	if c.errIsTerm {
		fmt.Fprintln(c.Err, c.warn.Sprint(text))
		return
	}
	fmt.Fprintln(c.Err, text)
}
