package bidi

import "github.com/arbsh/arbsh/internal/bidiprop"

type bracketTable interface {
	BracketInfo(cp rune) (bidiprop.BracketInfo, bool)
}

// applyN0 implements UAX #9 rule N0 (BD16 bracket pairs) for one
// isolating run sequence. It requires the original code points, so it
// is skipped when the engine is driven from pre-classified types
// (the BidiTest.txt conformance path) rather than real text.
//
// Simplification: the N0 note extending a resolved bracket's type to
// immediately-following NSM characters is not applied; those NSM
// positions already took the bracket's pre-resolution type in W1 and
// are left as N1/N2 resolve them.
func applyN0(types []bidiprop.Type, idxs []int, codepoints []rune, brackets bracketTable, seqLevel int) {
	embeddingRTL := seqLevel%2 == 1
	embeddingType := bidiprop.L
	if embeddingRTL {
		embeddingType = bidiprop.R
	}

	pairs := findBracketPairs(types, idxs, codepoints, brackets)
	for _, p := range pairs {
		strongDir, found := enclosedStrongDirection(types, idxs, p.openPos, p.closePos)
		if !found {
			continue
		}
		resolved := embeddingType
		if strongDir != embeddingType {
			// Opposite direction found inside; check the established
			// context before the opening bracket.
			context, ok := precedingStrongDirection(types, idxs, p.openPos)
			if ok && context == strongDir {
				resolved = strongDir
			} else {
				resolved = embeddingType
			}
		}
		types[p.openPos] = resolved
		types[p.closePos] = resolved
	}
}

type bracketPair struct{ openPos, closePos int }

func findBracketPairs(types []bidiprop.Type, idxs []int, codepoints []rune, brackets bracketTable) []bracketPair {
	type openEntry struct {
		pos    int
		closer rune
	}
	var stack []openEntry
	var pairs []bracketPair

	for _, i := range idxs {
		if types[i] != bidiprop.ON {
			continue
		}
		info, ok := brackets.BracketInfo(codepoints[i])
		if !ok {
			continue
		}
		switch info.Kind {
		case bidiprop.Open:
			if len(stack) >= 63 {
				// BD16 caps the stack at 63 open brackets; beyond
				// that, bracket pairing stops for the sequence.
				return sortPairsByOpen(pairs)
			}
			stack = append(stack, openEntry{pos: i, closer: info.Paired})
		case bidiprop.Close:
			for k := len(stack) - 1; k >= 0; k-- {
				if stack[k].closer == codepoints[i] {
					pairs = append(pairs, bracketPair{openPos: stack[k].pos, closePos: i})
					stack = stack[:k]
					break
				}
			}
		}
	}
	return sortPairsByOpen(pairs)
}

func sortPairsByOpen(pairs []bracketPair) []bracketPair {
	for i := 1; i < len(pairs); i++ {
		j := i
		for j > 0 && pairs[j-1].openPos > pairs[j].openPos {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
			j--
		}
	}
	return pairs
}

// enclosedStrongDirection scans strictly between open and close for a
// strong type, treating EN/AN as R per N0.
func enclosedStrongDirection(types []bidiprop.Type, idxs []int, open, close int) (bidiprop.Type, bool) {
	inside := false
	for _, i := range idxs {
		if i == open {
			inside = true
			continue
		}
		if i == close {
			break
		}
		if !inside {
			continue
		}
		switch types[i] {
		case bidiprop.L:
			return bidiprop.L, true
		case bidiprop.R, bidiprop.EN, bidiprop.AN:
			return bidiprop.R, true
		}
	}
	return 0, false
}

func precedingStrongDirection(types []bidiprop.Type, idxs []int, pos int) (bidiprop.Type, bool) {
	var last bidiprop.Type
	found := false
	for _, i := range idxs {
		if i >= pos {
			break
		}
		switch types[i] {
		case bidiprop.L:
			last, found = bidiprop.L, true
		case bidiprop.R, bidiprop.EN, bidiprop.AN:
			last, found = bidiprop.R, true
		}
	}
	return last, found
}

// applyNeutralRules implements N1 and N2 over idxs.
func applyNeutralRules(types []bidiprop.Type, idxs []int, sosRTL, eosRTL bool, seqLevel int) {
	sos, eos := bidiprop.L, bidiprop.L
	if sosRTL {
		sos = bidiprop.R
	}
	if eosRTL {
		eos = bidiprop.R
	}
	embedding := bidiprop.L
	if seqLevel%2 == 1 {
		embedding = bidiprop.R
	}

	// niEffective treats EN/AN as R for N1 purposes.
	niEffective := func(t bidiprop.Type) bidiprop.Type {
		switch t {
		case bidiprop.EN, bidiprop.AN, bidiprop.R:
			return bidiprop.R
		default:
			return bidiprop.L
		}
	}

	k := 0
	for k < len(idxs) {
		if !types[idxs[k]].IsNI() {
			k++
			continue
		}
		start := k
		for k < len(idxs) && types[idxs[k]].IsNI() {
			k++
		}
		end := k

		before := sos
		if start > 0 {
			before = niEffective(types[idxs[start-1]])
		}
		after := eos
		if end < len(idxs) {
			after = niEffective(types[idxs[end]])
		}

		var resolved bidiprop.Type
		if before == after {
			resolved = before // N1
		} else {
			resolved = embedding // N2
		}
		for j := start; j < end; j++ {
			types[idxs[j]] = resolved
		}
	}
}
