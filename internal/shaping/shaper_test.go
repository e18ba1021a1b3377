package shaping

import (
	"testing"

	"github.com/arbsh/arbsh/internal/bidiprop"
	"github.com/stretchr/testify/assert"
)

func TestShapeNonArabicPassthrough(t *testing.T) {
	s := NewShaper(bidiprop.NewTable())
	in := []rune("hello, world! 123")
	out := s.Shape(in)
	assert.Equal(t, in, out)
}

func TestShapeIdempotentOnShapedText(t *testing.T) {
	s := NewShaper(bidiprop.NewTable())
	in := []rune("مرحبا")
	shaped := s.Shape(in)
	reshaped := s.Shape(shaped)
	assert.Equal(t, shaped, reshaped)
}

func TestShapeSelectsInitialMedialFinal(t *testing.T) {
	s := NewShaper(bidiprop.NewTable())
	// Beh-Teh-Theh: all dual-joining, so the middle letter is medial.
	in := []rune{0x0628, 0x062A, 0x062B}
	out := s.Shape(in)
	assert.Equal(t, rune(0xFE8F+0x0002), out[0]) // beh initial form FE91
	assert.Equal(t, rune(0xFE98), out[1])        // teh medial form
	assert.Equal(t, rune(0xFE9A), out[2])        // theh final form
}

func TestShapeLamAlefLigature(t *testing.T) {
	s := NewShaper(bidiprop.NewTable())
	in := []rune{0x0644, 0x0627} // lam + alef
	out := s.Shape(in)
	assert.Equal(t, []rune{0xFEFB}, out, "lam-alef should collapse to a single ligature")
}

func TestShapeLamAlefLigatureFinalForm(t *testing.T) {
	s := NewShaper(bidiprop.NewTable())
	// Beh + Lam + Alef: the lam joins from its left (beh), so the
	// ligature must use the final-form pair.
	in := []rune{0x0628, 0x0644, 0x0627}
	out := s.Shape(in)
	assert.Equal(t, []rune{0xFE91, 0xFEFC}, out, "beh joins right into the lam, so it takes its initial form")
}

func TestNonJoiningLetterAlwaysIsolated(t *testing.T) {
	s := NewShaper(bidiprop.NewTable())
	in := []rune{0x0628, 0x0621, 0x0628} // beh, hamza (non-joining), beh
	out := s.Shape(in)
	assert.Equal(t, rune(0xFE80), out[1], "hamza has no joined forms")
}
