package shaping

// forms holds the Arabic Presentation Forms-B (U+FE70-U+FEFC) code
// point for each joining context a letter supports. A zero value
// means the letter has no form in that context (right-joining and
// non-joining letters only ever have isolated/final).
type forms struct {
	isolated, initial, medial, final rune
}

// presentationForms maps a logical Arabic letter to its contextual
// forms, derived from the Unicode Arabic Presentation Forms-B block.
var presentationForms = map[rune]forms{
	0x0621: {isolated: 0xFE80},
	0x0622: {isolated: 0xFE81, final: 0xFE82},
	0x0623: {isolated: 0xFE83, final: 0xFE84},
	0x0624: {isolated: 0xFE85, final: 0xFE86},
	0x0625: {isolated: 0xFE87, final: 0xFE88},
	0x0626: {isolated: 0xFE89, initial: 0xFE8B, medial: 0xFE8C, final: 0xFE8A},
	0x0627: {isolated: 0xFE8D, final: 0xFE8E},
	0x0628: {isolated: 0xFE8F, initial: 0xFE91, medial: 0xFE92, final: 0xFE90},
	0x0629: {isolated: 0xFE93, final: 0xFE94},
	0x062A: {isolated: 0xFE95, initial: 0xFE97, medial: 0xFE98, final: 0xFE96},
	0x062B: {isolated: 0xFE99, initial: 0xFE9B, medial: 0xFE9C, final: 0xFE9A},
	0x062C: {isolated: 0xFE9D, initial: 0xFE9F, medial: 0xFEA0, final: 0xFE9E},
	0x062D: {isolated: 0xFEA1, initial: 0xFEA3, medial: 0xFEA4, final: 0xFEA2},
	0x062E: {isolated: 0xFEA5, initial: 0xFEA7, medial: 0xFEA8, final: 0xFEA6},
	0x062F: {isolated: 0xFEA9, final: 0xFEAA},
	0x0630: {isolated: 0xFEAB, final: 0xFEAC},
	0x0631: {isolated: 0xFEAD, final: 0xFEAE},
	0x0632: {isolated: 0xFEAF, final: 0xFEB0},
	0x0633: {isolated: 0xFEB1, initial: 0xFEB3, medial: 0xFEB4, final: 0xFEB2},
	0x0634: {isolated: 0xFEB5, initial: 0xFEB7, medial: 0xFEB8, final: 0xFEB6},
	0x0635: {isolated: 0xFEB9, initial: 0xFEBB, medial: 0xFEBC, final: 0xFEBA},
	0x0636: {isolated: 0xFEBD, initial: 0xFEBF, medial: 0xFEC0, final: 0xFEBE},
	0x0637: {isolated: 0xFEC1, initial: 0xFEC3, medial: 0xFEC4, final: 0xFEC2},
	0x0638: {isolated: 0xFEC5, initial: 0xFEC7, medial: 0xFEC8, final: 0xFEC6},
	0x0639: {isolated: 0xFEC9, initial: 0xFECB, medial: 0xFECC, final: 0xFECA},
	0x063A: {isolated: 0xFECD, initial: 0xFECF, medial: 0xFED0, final: 0xFECE},
	0x0641: {isolated: 0xFED1, initial: 0xFED3, medial: 0xFED4, final: 0xFED2},
	0x0642: {isolated: 0xFED5, initial: 0xFED7, medial: 0xFED8, final: 0xFED6},
	0x0643: {isolated: 0xFED9, initial: 0xFEDB, medial: 0xFEDC, final: 0xFEDA},
	0x0644: {isolated: 0xFEDD, initial: 0xFEDF, medial: 0xFEE0, final: 0xFEDE},
	0x0645: {isolated: 0xFEE1, initial: 0xFEE3, medial: 0xFEE4, final: 0xFEE2},
	0x0646: {isolated: 0xFEE5, initial: 0xFEE7, medial: 0xFEE8, final: 0xFEE6},
	0x0647: {isolated: 0xFEE9, initial: 0xFEEB, medial: 0xFEEC, final: 0xFEEA},
	0x0648: {isolated: 0xFEED, final: 0xFEEE},
	0x0649: {isolated: 0xFEEF, final: 0xFEF0},
	0x064A: {isolated: 0xFEF1, initial: 0xFEF3, medial: 0xFEF4, final: 0xFEF2},
}

func isLam(cp rune) bool { return cp == 0x0644 }

func isAlefVariant(cp rune) bool {
	switch cp {
	case 0x0622, 0x0623, 0x0625, 0x0627:
		return true
	default:
		return false
	}
}

type ligatureForms struct{ isolated, final rune }

var lamAlefLigatures = map[rune]ligatureForms{
	0x0622: {isolated: 0xFEF5, final: 0xFEF6},
	0x0623: {isolated: 0xFEF7, final: 0xFEF8},
	0x0625: {isolated: 0xFEF9, final: 0xFEFA},
	0x0627: {isolated: 0xFEFB, final: 0xFEFC},
}

// lamAlefLigature returns the Lam-Alef ligature code point for the
// given Alef variant, selecting the final form when lamState shows
// the Lam is joined to from its logical left (Medial/Final), and the
// isolated form otherwise.
func lamAlefLigature(lam, alef rune, lamState JoiningState) (rune, bool) {
	lig, ok := lamAlefLigatures[alef]
	if !ok {
		return 0, false
	}
	if lamState == Medial || lamState == Final {
		return lig.final, true
	}
	return lig.isolated, true
}
