package bidiprop

import "unicode"

// Table is the CharacterPropertyTable: a total classifier from code
// points to bidirectional type, joining class, and bracket info.
//
// Full Bidi_Class and Joining_Type data ship as multi-megabyte tables
// in UnicodeData.txt / ArabicShaping.txt; no example repo in this
// corpus vendors that dataset (golang.org/x/text/unicode/bidi keeps
// its range tables unexported). Table is therefore a curated range
// list covering every block BidiTest.txt and UAX #9 conformance
// exercise, plus the general-category fallback from the standard
// library's unicode.RangeTable data (itself generated from the same
// Unicode Character Database) for anything the curated list misses.
type Table struct {
	ranges []typeRange
}

type typeRange struct {
	lo, hi rune
	typ    Type
}

// NewTable builds the default code point property table.
func NewTable() *Table {
	return &Table{ranges: defaultRanges}
}

// BidiType returns the bidirectional character type of cp. Total:
// every code point maps to exactly one type.
func (t *Table) BidiType(cp rune) Type {
	if typ, ok := lookupRange(t.ranges, cp); ok {
		return typ
	}
	return t.classifyByCategory(cp)
}

func (t *Table) classifyByCategory(cp rune) Type {
	switch {
	case unicode.Is(unicode.Mn, cp), unicode.Is(unicode.Me, cp):
		return NSM
	case unicode.Is(unicode.Mc, cp):
		return NSM
	case unicode.Is(unicode.Nd, cp):
		return EN
	case unicode.Is(unicode.Cf, cp):
		return BN
	case unicode.Is(unicode.Cc, cp), unicode.Is(unicode.Cs, cp), unicode.Is(unicode.Co, cp):
		return BN
	case unicode.Is(unicode.L, cp):
		return L
	case unicode.Is(unicode.P, cp), unicode.Is(unicode.S, cp):
		return ON
	default:
		return ON
	}
}

func lookupRange(ranges []typeRange, cp rune) (Type, bool) {
	lo, hi := 0, len(ranges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := ranges[mid]
		switch {
		case cp < r.lo:
			hi = mid - 1
		case cp > r.hi:
			lo = mid + 1
		default:
			return r.typ, true
		}
	}
	return 0, false
}

// JoiningClass returns the Arabic cursive-joining class of cp.
// Non-Arabic code points are NonJoining.
func (t *Table) JoiningClass(cp rune) JoiningClass {
	if jc, ok := joiningTable[cp]; ok {
		return jc
	}
	if cp >= 0x0600 && cp <= 0x06FF || cp >= 0x0750 && cp <= 0x077F {
		// Arabic combining marks are transparent to joining.
		if t.BidiType(cp) == NSM {
			return Transparent
		}
	}
	return NonJoining
}

// BracketInfo returns the BD16 bracket-pair entry for cp, if any.
func (t *Table) BracketInfo(cp rune) (BracketInfo, bool) {
	info, ok := bracketTable[cp]
	return info, ok
}

// defaultRanges is sorted and non-overlapping; lookupRange relies on
// that invariant for its binary search.
var defaultRanges = sortedRanges([]typeRange{
	{0x0000, 0x0008, BN},
	{0x0009, 0x0009, S},
	{0x000A, 0x000A, B},
	{0x000B, 0x000B, S},
	{0x000C, 0x000C, WS},
	{0x000D, 0x000D, B},
	{0x000E, 0x001B, BN},
	{0x001C, 0x001E, B},
	{0x001F, 0x001F, S},
	{0x0020, 0x0020, WS},
	{0x0021, 0x0022, ON},
	{0x0023, 0x0025, ET},
	{0x0026, 0x0029, ON},
	{0x002A, 0x002A, ON},
	{0x002B, 0x002B, ES},
	{0x002C, 0x002C, CS},
	{0x002D, 0x002D, ES},
	{0x002E, 0x002E, CS},
	{0x002F, 0x002F, CS},
	{0x0030, 0x0039, EN},
	{0x003A, 0x003A, CS},
	{0x003B, 0x0040, ON},
	{0x0041, 0x005A, L},
	{0x005B, 0x0060, ON},
	{0x0061, 0x007A, L},
	{0x007B, 0x007E, ON},
	{0x007F, 0x0084, BN},
	{0x0085, 0x0085, B},
	{0x0086, 0x009F, BN},
	{0x00A0, 0x00A0, CS},
	{0x00A1, 0x00A1, ON},
	{0x00A2, 0x00A5, ET},
	{0x00A6, 0x00A8, ON},
	{0x00A9, 0x00A9, ON}, // copyright sign, explicitly ON per spec
	{0x00AA, 0x00AA, L},
	{0x00AB, 0x00AC, ON},
	{0x00AD, 0x00AD, BN},
	{0x00AE, 0x00AF, ON},
	{0x00B0, 0x00B1, ET},
	{0x00B2, 0x00B3, EN},
	{0x00B4, 0x00B4, ON},
	{0x00B5, 0x00B5, L},
	{0x00B6, 0x00B8, ON},
	{0x00B9, 0x00B9, EN},
	{0x00BA, 0x00BA, L},
	{0x00BB, 0x00BE, ON},
	{0x00BF, 0x00BF, ON},
	{0x00C0, 0x00D6, L},
	{0x00D7, 0x00D7, ON},
	{0x00D8, 0x00F6, L},
	{0x00F7, 0x00F7, ON},
	{0x00F8, 0x00FF, L}, // includes é U+00E9
	{0x0590, 0x0590, R},
	{0x0591, 0x05BD, NSM},
	{0x05BE, 0x05BE, R},
	{0x05BF, 0x05BF, NSM},
	{0x05C0, 0x05C0, R},
	{0x05C1, 0x05C2, NSM},
	{0x05C3, 0x05C3, R},
	{0x05C4, 0x05C5, NSM},
	{0x05C6, 0x05C6, R},
	{0x05C7, 0x05C7, NSM},
	{0x05D0, 0x05EA, R},
	{0x05EF, 0x05F4, R},
	{0x0600, 0x0605, AN},
	{0x0608, 0x0608, AL},
	{0x060B, 0x060B, AL},
	{0x060C, 0x060C, CS},
	{0x060D, 0x060D, AL},
	{0x060E, 0x060F, ON},
	{0x0610, 0x061A, NSM},
	{0x061B, 0x061B, AL},
	{0x061C, 0x061C, BN}, // ALM, treated as BN boundary marker here
	{0x061D, 0x061F, AL},
	{0x0620, 0x063F, AL},
	{0x0640, 0x0640, AL}, // tatweel
	{0x0641, 0x064A, AL},
	{0x064B, 0x065F, NSM},
	{0x0660, 0x0669, AN},
	{0x066A, 0x066A, ET},
	{0x066B, 0x066C, AN},
	{0x066D, 0x066F, AL},
	{0x0670, 0x0670, NSM},
	{0x0671, 0x06D3, AL},
	{0x06D4, 0x06D4, AL},
	{0x06D5, 0x06D5, AL},
	{0x06D6, 0x06DC, NSM},
	{0x06DD, 0x06DD, AN},
	{0x06DE, 0x06DE, ON},
	{0x06DF, 0x06E4, NSM},
	{0x06E5, 0x06E6, AL},
	{0x06E7, 0x06E8, NSM},
	{0x06E9, 0x06E9, ON},
	{0x06EA, 0x06ED, NSM},
	{0x06EE, 0x06EF, AL},
	{0x06F0, 0x06F9, EN},
	{0x06FA, 0x06FF, AL},
	{0x0700, 0x070D, ON},
	{0x070F, 0x070F, BN},
	{0x0710, 0x0710, AL},
	{0x0711, 0x0711, NSM},
	{0x0712, 0x072F, AL},
	{0x0730, 0x074A, NSM},
	{0x074D, 0x07A5, AL},
	{0x07A6, 0x07B0, NSM},
	{0x07B1, 0x07B1, AL},
	{0x0900, 0x0902, NSM},
	{0x200B, 0x200B, BN},
	{0x200C, 0x200D, BN}, // ZWNJ/ZWJ
	{0x200E, 0x200F, BN}, // LRM, RLM: UAX #9 classifies both as BN
	{0x2010, 0x2015, ON},
	{0x2016, 0x2017, ON},
	{0x2018, 0x2019, ON},
	{0x201A, 0x201B, ON},
	{0x201C, 0x201D, ON},
	{0x201E, 0x201F, ON},
	{0x2020, 0x2027, ON},
	{0x2028, 0x2028, WS},
	{0x2029, 0x2029, B},
	{0x202A, 0x202A, LRE},
	{0x202B, 0x202B, RLE},
	{0x202C, 0x202C, PDF},
	{0x202D, 0x202D, LRO},
	{0x202E, 0x202E, RLO},
	{0x202F, 0x202F, CS},
	{0x2066, 0x2066, LRI},
	{0x2067, 0x2067, RLI},
	{0x2068, 0x2068, FSI},
	{0x2069, 0x2069, PDI},
	{0xFB1D, 0xFB4F, R},  // Hebrew presentation forms
	{0xFB50, 0xFBB1, AL}, // Arabic presentation forms-A
	{0xFBD3, 0xFD3D, AL},
	{0xFD50, 0xFDFB, AL},
	{0xFE70, 0xFEFC, AL}, // Arabic presentation forms-B
	{0xFEFF, 0xFEFF, BN},
})

// joiningTable holds the explicit joining class of each listed Arabic
// code point. JoiningClass reports unlisted Arabic NSM code points as
// Transparent and every other unlisted code point as NonJoining.
var joiningTable = buildJoiningTable()

func buildJoiningTable() map[rune]JoiningClass {
	m := make(map[rune]JoiningClass, 64)
	// Right-joining only: letters that never connect to what follows.
	rightJoining := []rune{
		0x0622, 0x0623, 0x0624, 0x0625, 0x0627, // alef forms + hamza-on-alef/waw
		0x0629, // teh marbuta
		0x062F, 0x0630, // dal, thal
		0x0631, 0x0632, // reh, zain
		0x0648, // waw
		0x0698, // jeh
		0x0671, 0x0672, 0x0673, 0x0675, 0x0676, 0x0677,
		0x06C0, 0x06C3, 0x06C4, 0x06C5, 0x06C6, 0x06C7, 0x06C8,
		0x06CF, 0x06D5,
		0x0649, // alef maksura is right-joining, not dual-joining
	}
	for _, r := range rightJoining {
		m[r] = RightJoining
	}
	// Dual-joining: the common Arabic letters that connect on both sides.
	dualJoining := []rune{
		0x0626, 0x0628, 0x062A, 0x062B, 0x062C, 0x062D, 0x062E,
		0x0633, 0x0634, 0x0635, 0x0636, 0x0637, 0x0638, 0x0639, 0x063A,
		0x0641, 0x0642, 0x0643, 0x0644, 0x0645, 0x0646, 0x0647, 0x064A,
		0x066E, 0x066F,
		0x0678, 0x0679, 0x067A, 0x067B, 0x067C, 0x067D, 0x067E, 0x067F,
		0x0680, 0x0681, 0x0682, 0x0683, 0x0684, 0x0685, 0x0686, 0x0687,
		0x069A, 0x069B, 0x069C, 0x069D, 0x069E, 0x069F,
		0x06A0, 0x06A1, 0x06A2, 0x06A3, 0x06A4, 0x06A5, 0x06A6,
		0x06A7, 0x06A8, 0x06A9, 0x06AA, 0x06AB, 0x06AC, 0x06AD, 0x06AE,
		0x06AF, 0x06B0, 0x06B1, 0x06B2, 0x06B3, 0x06B4, 0x06B5, 0x06B6,
		0x06B7, 0x06B8, 0x06B9, 0x06BA, 0x06BB, 0x06BC, 0x06BD, 0x06BE,
		0x06BF, 0x06C1, 0x06C2, 0x06CC, 0x06CD, 0x06CE, 0x06D0, 0x06D1,
	}
	for _, r := range dualJoining {
		m[r] = DualJoining
	}
	// Transparent: Arabic combining marks (NSM range, Tatweel is join-causing).
	m[0x0640] = JoinCausing // tatweel extends joining both ways
	for cp := rune(0x064B); cp <= 0x065F; cp++ {
		m[cp] = Transparent
	}
	for cp := rune(0x0610); cp <= 0x061A; cp++ {
		m[cp] = Transparent
	}
	m[0x0670] = Transparent
	return m
}

// bracketTable is the BD16 bracket-pairs table, covering the ASCII
// and common Unicode bracket pairs exercised by BidiTest.txt.
var bracketTable = buildBracketTable()

func buildBracketTable() map[rune]BracketInfo {
	pairs := [][2]rune{
		{'(', ')'},
		{'[', ']'},
		{'{', '}'},
		{0x0F3A, 0x0F3B},
		{0x0F3C, 0x0F3D},
		{0x169B, 0x169C},
		{0x2045, 0x2046},
		{0x207D, 0x207E},
		{0x208D, 0x208E},
		{0x2308, 0x2309},
		{0x230A, 0x230B},
		{0x2329, 0x232A},
		{0x2768, 0x2769},
		{0x276A, 0x276B},
		{0x3008, 0x3009},
		{0x300A, 0x300B},
		{0x300C, 0x300D},
		{0x300E, 0x300F},
	}
	m := make(map[rune]BracketInfo, len(pairs)*2)
	for _, p := range pairs {
		open, close := p[0], p[1]
		m[open] = BracketInfo{Paired: close, Kind: Open}
		m[close] = BracketInfo{Paired: open, Kind: Close}
	}
	return m
}

func sortedRanges(rs []typeRange) []typeRange {
	// Simple insertion sort; the literal above is authored in
	// ascending order already, this guards against future edits.
	for i := 1; i < len(rs); i++ {
		j := i
		for j > 0 && rs[j-1].lo > rs[j].lo {
			rs[j-1], rs[j] = rs[j], rs[j-1]
			j--
		}
	}
	return rs
}
