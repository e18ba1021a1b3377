// Package bidi implements the BidiEngine component: the Unicode
// Bidirectional Algorithm (UAX #9) rule classes P, X, W, N, I, plus
// rule L reordering for display.
package bidi

import "github.com/arbsh/arbsh/internal/bidiprop"

// MaxDepth is the maximum embedding level UAX #9 permits (max_depth).
const MaxDepth = 125

// Run is a contiguous, single-level span of the logical code point
// sequence produced by level-run segmentation.
type Run struct {
	Start  int
	Length int
	Level  int
}

// End returns the exclusive end index of the run.
func (r Run) End() int { return r.Start + r.Length }

// BaseLevel selects how the paragraph embedding level is computed.
type BaseLevel int

const (
	// AutoDetect applies UAX #9 rules P2/P3: the level of the first
	// strong character, defaulting to LTR (0) if none is found.
	AutoDetect BaseLevel = -1
	ForceLTR   BaseLevel = 0
	ForceRTL   BaseLevel = 1
)

// overrideStatus is the directional override carried by a stack entry.
type overrideStatus uint8

const (
	overrideNeutral overrideStatus = iota
	overrideLTR
	overrideRTL
)

type statusEntry struct {
	level    int
	override overrideStatus
	isolate  bool
}

// Table is the subset of bidiprop.Table the engine depends on. Kept
// as an interface so tests can supply a synthetic classifier matching
// BidiTest.txt's already-classified input lines.
type Table interface {
	BidiType(cp rune) bidiprop.Type
	BracketInfo(cp rune) (bidiprop.BracketInfo, bool)
}
