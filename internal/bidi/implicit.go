package bidi

import "github.com/arbsh/arbsh/internal/bidiprop"

// applyImplicitRules implements I1 and I2, raising each character's
// embedding level according to its resolved type.
func applyImplicitRules(types []bidiprop.Type, levels []int, idxs []int, seqLevel int) {
	even := seqLevel%2 == 0
	for _, i := range idxs {
		switch types[i] {
		case bidiprop.R:
			if even {
				levels[i]++
			}
		case bidiprop.EN, bidiprop.AN:
			if even {
				levels[i] += 2
			} else {
				levels[i]++
			}
		case bidiprop.L:
			if !even {
				levels[i]++
			}
		}
	}
}
