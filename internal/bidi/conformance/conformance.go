// Package conformance runs the Unicode BidiTest.txt suite against the
// BidiEngine, per spec §6/§8: "A conformance test runner accepts
// Unicode BidiTest.txt input and reports pass/fail counts."
package conformance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arbsh/arbsh/internal/bidi"
	"github.com/arbsh/arbsh/internal/bidiprop"
)

// Report summarizes a conformance run.
type Report struct {
	Passed   int
	Failed   int
	Failures []Failure
}

// Failure records one mismatching (line, direction) pair.
type Failure struct {
	Line      int
	Direction string
	Want      []int
	Got       []int
}

const (
	bitAuto = 1 << 0
	bitLTR  = 1 << 1
	bitRTL  = 1 << 2
)

var typeNames = map[string]bidiprop.Type{
	"L": bidiprop.L, "R": bidiprop.R, "AL": bidiprop.AL, "EN": bidiprop.EN,
	"ES": bidiprop.ES, "ET": bidiprop.ET, "AN": bidiprop.AN, "CS": bidiprop.CS,
	"NSM": bidiprop.NSM, "BN": bidiprop.BN, "B": bidiprop.B, "S": bidiprop.S,
	"WS": bidiprop.WS, "ON": bidiprop.ON, "LRE": bidiprop.LRE, "LRO": bidiprop.LRO,
	"RLE": bidiprop.RLE, "RLO": bidiprop.RLO, "PDF": bidiprop.PDF, "LRI": bidiprop.LRI,
	"RLI": bidiprop.RLI, "FSI": bidiprop.FSI, "PDI": bidiprop.PDI,
}

// Run parses a BidiTest.txt stream and checks every test case's
// levels (and rule-L reorder, when an @Reorder directive is active)
// against the engine's output for each paragraph direction selected
// by the case's bitset.
func Run(r io.Reader) (Report, error) {
	engine := bidi.NewEngine(bidiprop.NewTable())
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var report Report
	var levelDirective []string
	var reorderDirective []int
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@Levels:") {
			levelDirective = strings.Fields(strings.TrimPrefix(line, "@Levels:"))
			continue
		}
		if strings.HasPrefix(line, "@Reorder:") {
			reorderDirective = parseInts(strings.Fields(strings.TrimPrefix(line, "@Reorder:")))
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) != 2 {
			continue
		}
		classNames := strings.Fields(parts[0])
		bitset, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return report, fmt.Errorf("conformance: line %d: bad bitset %q: %w", lineNo, parts[1], err)
		}

		types := make([]bidiprop.Type, len(classNames))
		for i, name := range classNames {
			t, ok := typeNames[name]
			if !ok {
				return report, fmt.Errorf("conformance: line %d: unknown bidi class %q", lineNo, name)
			}
			types[i] = t
		}

		dirs := []struct {
			name string
			base bidi.BaseLevel
			bit  int64
		}{
			{"auto", bidi.AutoDetect, bitAuto},
			{"ltr", bidi.ForceLTR, bitLTR},
			{"rtl", bidi.ForceRTL, bitRTL},
		}

		for _, d := range dirs {
			if bitset&d.bit == 0 {
				continue
			}
			levels, runs := engine.ProcessTypes(types, d.base)
			want := expectedLevels(levelDirective, len(types))
			if levelsMatch(want, levels) {
				if reorderDirective != nil && !reorderMatches(reorderDirective, bidi.Reorder(levels), want) {
					report.Failed++
					report.Failures = append(report.Failures, Failure{Line: lineNo, Direction: d.name, Want: reorderDirective, Got: runsToOrder(runs, levels)})
					continue
				}
				report.Passed++
			} else {
				report.Failed++
				report.Failures = append(report.Failures, Failure{Line: lineNo, Direction: d.name, Want: want, Got: levels})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func expectedLevels(directive []string, n int) []int {
	out := make([]int, n)
	for i := 0; i < n && i < len(directive); i++ {
		if directive[i] == "x" {
			out[i] = -1 // don't-care
			continue
		}
		v, err := strconv.Atoi(directive[i])
		if err != nil {
			out[i] = -1
			continue
		}
		out[i] = v
	}
	return out
}

func levelsMatch(want, got []int) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] == -1 {
			continue
		}
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

func reorderMatches(want, gotOrder, levels []int) bool {
	// @Reorder: lists the logical indices of characters excluding
	// those removed at level -1 (BN/explicit codes are absent from
	// BidiTest.txt's reorder lists); filter identically.
	var filtered []int
	for _, idx := range gotOrder {
		if levels[idx] != -1 {
			filtered = append(filtered, idx)
		}
	}
	if len(filtered) != len(want) {
		return false
	}
	for i := range want {
		if want[i] != filtered[i] {
			return false
		}
	}
	return true
}

func runsToOrder(runs []bidi.Run, levels []int) []int {
	return bidi.Reorder(levels)
}

func parseInts(fields []string) []int {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
