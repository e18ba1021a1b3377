package shellio

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/arbsh/arbsh/internal/bidi"
	"github.com/arbsh/arbsh/internal/display"
	"github.com/arbsh/arbsh/internal/session"
)

// liner measures a prompt's printable width from its raw bytes unless
// non-printing runs are wrapped in \x01..\x02, the same convention the
// teacher's colorizeForPrompt used for its own ANSI-colored prompts.
const (
	ignoreStart = "\x01"
	ignoreEnd   = "\x02"
)

func wrapIgnorable(code string) string {
	return ignoreStart + code + ignoreEnd
}

// Prompt builds the REPL prompt for the current session: the working
// directory, reordered and shaped through the display formatter when
// the session is in Arabic mode, colored cyan the way the teacher
// colors its own prompt segments.
func Prompt(sess *session.State, formatter *display.Formatter) string {
	cwd := sess.CurrentDirectory()
	base := bidi.AutoDetect
	suffix := "$ "
	if sess.IsArabic() {
		base = bidi.ForceRTL
		cwd = formatter.Format(cwd, base)
		suffix = " $"
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	colored := wrapIgnorable("") + cyan(cwd) + wrapIgnorable("")
	if sess.IsArabic() {
		return suffix + colored
	}
	return colored + suffix
}

// ErrorLine formats a stage or binding error the way the shell prints
// it between prompts, as "error: <message>" per spec §4.7.
func ErrorLine(err error) string {
	return fmt.Sprintf("error: %v", err)
}
