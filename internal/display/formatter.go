// Package display implements the DisplayFormatter component: it
// drives a line of logical text through the BiDi engine and the
// Arabic shaper, reorders it for the host terminal, and decides
// alignment and directional marks.
package display

import (
	"strings"

	"github.com/arbsh/arbsh/internal/bidi"
	"github.com/arbsh/arbsh/internal/bidiprop"
	"github.com/arbsh/arbsh/internal/shaping"
	"github.com/mattn/go-runewidth"
)

// Alignment describes how a formatted line should be padded against
// the terminal width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Formatter composes prompts and output lines for the host terminal.
type Formatter struct {
	engine *bidi.Engine
	shaper *shaping.Shaper
}

// New constructs a Formatter sharing one property table between the
// BiDi engine and the Arabic shaper.
func New() *Formatter {
	table := bidiprop.NewTable()
	return &Formatter{
		engine: bidi.NewEngine(table),
		shaper: shaping.NewShaper(table),
	}
}

// Format runs the full display pipeline on one logical line: BidiEngine
// (levels) -> Arabic shaper (forms) -> rule L reordering -> visual
// string, per spec §4.3's coupling contract.
func (f *Formatter) Format(line string, base bidi.BaseLevel) string {
	logical := []rune(line)
	levels, _ := f.engine.Process(logical, base)
	shaped := f.shaper.Shape(logical)

	// Shaping may collapse Lam-Alef pairs, shortening the sequence by
	// one rune per ligature; levels were computed against the
	// unshaped sequence, so re-run the engine on the shaped form to
	// keep level and rune counts aligned for reordering.
	if len(shaped) != len(logical) {
		levels, _ = f.engine.Process(shaped, base)
	}

	order := bidi.Reorder(levels)
	visual := make([]rune, len(order))
	for i, logicalIdx := range order {
		visual[i] = shaped[logicalIdx]
	}
	return string(visual)
}

// Width reports the terminal column width of a formatted (visual
// order) string, accounting for wide and combining runes.
func (f *Formatter) Width(s string) int {
	return runewidth.StringWidth(s)
}

// Pad pads a formatted line to width columns according to align:
// AlignRight puts the padding before s, AlignLeft after it. A line
// already at least width columns wide is returned unchanged.
func (f *Formatter) Pad(s string, width int, align Alignment) string {
	w := f.Width(s)
	if w >= width {
		return s
	}
	pad := strings.Repeat(" ", width-w)
	if align == AlignRight {
		return pad + s
	}
	return s + pad
}

// ApplyDirectionalMark prefixes s with an LRM or RLM mark when mixing
// it into surrounding text of the opposite base direction would
// otherwise misorder trailing neutral characters, per UAX #9's
// guidance on directional marks at formatting boundaries.
func ApplyDirectionalMark(s string, base bidi.BaseLevel) string {
	switch base {
	case bidi.ForceRTL:
		return "‏" + s
	case bidi.ForceLTR:
		return "‎" + s
	default:
		return s
	}
}
