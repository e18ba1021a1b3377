package bidi

import "github.com/arbsh/arbsh/internal/bidiprop"

// applyWeakRules implements W1-W7 over the non-removed positions idxs
// of one isolating run sequence.
func applyWeakRules(types []bidiprop.Type, idxs []int, sosRTL, eosRTL bool) {
	sos, eos := bidiprop.L, bidiprop.L
	if sosRTL {
		sos = bidiprop.R
	}
	if eosRTL {
		eos = bidiprop.R
	}

	// W1: NSM takes the type of the preceding character; isolate
	// initiators and PDI count as ON for this purpose.
	prev := sos
	for _, i := range idxs {
		t := types[i]
		if t == bidiprop.NSM {
			if prev.IsIsolateInitiator() || prev == bidiprop.PDI {
				types[i] = bidiprop.ON
			} else {
				types[i] = prev
			}
		}
		prev = types[i]
	}

	// W2: EN becomes AN when the nearest preceding strong type is AL.
	strong := sos
	for _, i := range idxs {
		t := types[i]
		switch t {
		case bidiprop.L, bidiprop.R, bidiprop.AL:
			strong = t
		case bidiprop.EN:
			if strong == bidiprop.AL {
				types[i] = bidiprop.AN
			}
		}
	}

	// W3: AL becomes R.
	for _, i := range idxs {
		if types[i] == bidiprop.AL {
			types[i] = bidiprop.R
		}
	}

	// W4: single ES/CS between two EN, or single CS between two AN.
	for k, i := range idxs {
		if k == 0 || k == len(idxs)-1 {
			continue
		}
		before := types[idxs[k-1]]
		after := types[idxs[k+1]]
		switch types[i] {
		case bidiprop.ES:
			if before == bidiprop.EN && after == bidiprop.EN {
				types[i] = bidiprop.EN
			}
		case bidiprop.CS:
			if before == bidiprop.EN && after == bidiprop.EN {
				types[i] = bidiprop.EN
			} else if before == bidiprop.AN && after == bidiprop.AN {
				types[i] = bidiprop.AN
			}
		}
	}

	// W5: a run of ET adjacent to EN becomes EN.
	k := 0
	for k < len(idxs) {
		if types[idxs[k]] != bidiprop.ET {
			k++
			continue
		}
		start := k
		for k < len(idxs) && types[idxs[k]] == bidiprop.ET {
			k++
		}
		end := k
		adjacentEN := (start > 0 && types[idxs[start-1]] == bidiprop.EN) ||
			(end < len(idxs) && types[idxs[end]] == bidiprop.EN)
		if adjacentEN {
			for j := start; j < end; j++ {
				types[idxs[j]] = bidiprop.EN
			}
		}
	}

	// W6: remaining ES, ET, CS become ON.
	for _, i := range idxs {
		switch types[i] {
		case bidiprop.ES, bidiprop.ET, bidiprop.CS:
			types[i] = bidiprop.ON
		}
	}

	// W7: EN becomes L when the nearest preceding strong type is L.
	strong = sos
	for _, i := range idxs {
		switch types[i] {
		case bidiprop.L, bidiprop.R:
			strong = types[i]
		case bidiprop.EN:
			if strong == bidiprop.L {
				types[i] = bidiprop.L
			}
		}
	}

	_ = eos // eos feeds N1/N2, computed there
}
