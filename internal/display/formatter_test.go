package display

import (
	"testing"

	"github.com/arbsh/arbsh/internal/bidi"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlainASCIIUnchanged(t *testing.T) {
	f := New()
	assert.Equal(t, "hello", f.Format("hello", bidi.AutoDetect))
}

func TestFormatArabicReordersAndShapes(t *testing.T) {
	f := New()
	out := f.Format("لا", bidi.AutoDetect) // lam + alef
	assert.Equal(t, string(rune(0xFEFB)), out, "lam-alef ligature is a single visual glyph")
}

func TestPadLeftAndRight(t *testing.T) {
	f := New()
	assert.Equal(t, "ab  ", f.Pad("ab", 4, AlignLeft))
	assert.Equal(t, "  ab", f.Pad("ab", 4, AlignRight))
}

func TestWidthCountsWideRunes(t *testing.T) {
	f := New()
	assert.Equal(t, 2, f.Width("片"))
	assert.Equal(t, 3, f.Width("abc"))
}
