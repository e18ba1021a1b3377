// Package shaping implements the ArabicShaper component: contextual
// presentation-form selection and Lam-Alef ligature substitution over
// logical-order Arabic text.
package shaping

import "github.com/arbsh/arbsh/internal/bidiprop"

// JoiningState is the contextual shaping state of a letter.
type JoiningState uint8

const (
	Isolated JoiningState = iota
	Initial
	Medial
	Final
)

type classifier interface {
	BidiType(cp rune) bidiprop.Type
	JoiningClass(cp rune) bidiprop.JoiningClass
}

// Shaper selects Arabic presentation forms and applies Lam-Alef
// ligatures over a logical-order rune sequence.
type Shaper struct {
	table classifier
}

// NewShaper constructs a Shaper backed by table.
func NewShaper(table classifier) *Shaper {
	return &Shaper{table: table}
}

// Shape walks input in logical order and returns the shaped sequence:
// each Arabic letter replaced by its contextual presentation form,
// with Lam-Alef pairs collapsed to a single ligature code point.
// Non-Arabic code points and already-shaped presentation forms pass
// through unchanged.
func (s *Shaper) Shape(input []rune) []rune {
	states := s.joiningStates(input)

	out := make([]rune, 0, len(input))
	for i := 0; i < len(input); i++ {
		cp := input[i]
		if isLam(cp) && i+1 < len(input) && isAlefVariant(input[i+1]) {
			if lig, ok := lamAlefLigature(cp, input[i+1], states[i]); ok {
				out = append(out, lig)
				i++ // consume the Alef too
				continue
			}
		}
		out = append(out, s.presentationForm(cp, states[i]))
	}
	return out
}

// joiningStates computes the contextual JoiningState for every
// position of input, skipping Transparent (NSM) code points when
// locating the nearest non-transparent neighbor on each side.
func (s *Shaper) joiningStates(input []rune) []JoiningState {
	n := len(input)
	states := make([]JoiningState, n)
	classes := make([]bidiprop.JoiningClass, n)
	for i, cp := range input {
		classes[i] = s.table.JoiningClass(cp)
	}

	for i := 0; i < n; i++ {
		jc := classes[i]
		if jc == bidiprop.NonJoining || jc == bidiprop.Transparent {
			states[i] = Isolated
			continue
		}

		leftNeighbor := nearestNonTransparent(classes, i-1, -1)
		rightNeighbor := nearestNonTransparent(classes, i+1, 1)

		// leftNeighbor precedes i in logical order; a right-side
		// connection (JoinsRight) is the one toward the preceding letter.
		joinsLeft := jc.JoinsRight() && leftNeighbor != nil && leftNeighbor.JoinsLeft()
		joinsRight := jc.JoinsLeft() && rightNeighbor != nil && rightNeighbor.JoinsRight()

		switch {
		case joinsLeft && joinsRight:
			states[i] = Medial
		case joinsRight:
			states[i] = Initial
		case joinsLeft:
			states[i] = Final
		default:
			states[i] = Isolated
		}
	}
	return states
}

func nearestNonTransparent(classes []bidiprop.JoiningClass, start, step int) *bidiprop.JoiningClass {
	for i := start; i >= 0 && i < len(classes); i += step {
		if classes[i] != bidiprop.Transparent {
			c := classes[i]
			return &c
		}
	}
	return nil
}

func (s *Shaper) presentationForm(cp rune, state JoiningState) rune {
	forms, ok := presentationForms[cp]
	if !ok {
		return cp
	}
	switch state {
	case Isolated:
		return pick(forms.isolated, cp)
	case Initial:
		return pick(forms.initial, cp)
	case Medial:
		return pick(forms.medial, cp)
	case Final:
		return pick(forms.final, cp)
	default:
		return cp
	}
}

func pick(form, fallback rune) rune {
	if form == 0 {
		return fallback
	}
	return form
}
