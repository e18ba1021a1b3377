package bidiprop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBidiTypeInvariants(t *testing.T) {
	table := NewTable()

	assert.Equal(t, BN, table.BidiType(0x200E), "LRM must be BN")
	assert.Equal(t, BN, table.BidiType(0x200F), "RLM must be BN")
	assert.Equal(t, S, table.BidiType('\t'))
	assert.Equal(t, WS, table.BidiType(' '))
	assert.Equal(t, L, table.BidiType('é'))
	assert.Equal(t, ON, table.BidiType(0x00A9), "copyright sign must be ON")
	assert.Equal(t, AL, table.BidiType('ا'))
	assert.Equal(t, R, table.BidiType(0x05D0), "Hebrew alef must be R")
	assert.Equal(t, AN, table.BidiType(0x0660), "Arabic-indic digit must be AN")
}

func TestBidiTypeTotality(t *testing.T) {
	table := NewTable()
	// Sweep a broad sample of the BMP; every code point must resolve
	// to exactly one type without panicking.
	for cp := rune(0); cp < 0x10000; cp += 7 {
		got := table.BidiType(cp)
		assert.True(t, got <= PDI, "code point %#x produced out-of-range type %v", cp, got)
	}
}

func TestJoiningClassArabic(t *testing.T) {
	table := NewTable()

	assert.Equal(t, DualJoining, table.JoiningClass('ب')) // beh
	assert.Equal(t, RightJoining, table.JoiningClass('ا')) // alef
	assert.Equal(t, NonJoining, table.JoiningClass('A'))
	assert.Equal(t, Transparent, table.JoiningClass(0x064B)) // fathatan
}

func TestBracketInfoBD16(t *testing.T) {
	table := NewTable()

	info, ok := table.BracketInfo('(')
	assert.True(t, ok)
	assert.Equal(t, ')', info.Paired)
	assert.Equal(t, Open, info.Kind)

	info, ok = table.BracketInfo(')')
	assert.True(t, ok)
	assert.Equal(t, '(', info.Paired)
	assert.Equal(t, Close, info.Kind)

	_, ok = table.BracketInfo('x')
	assert.False(t, ok)
}
