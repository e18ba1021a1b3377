// Command arbsh-bidiconf runs the Unicode BidiTest.txt conformance
// suite against the BiDi engine and reports pass/fail counts, per
// spec §6/§8. Only BidiTest.txt's class-list format is understood;
// lines in BidiCharacterTest.txt's code-point format are skipped.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/arbsh/arbsh/internal/bidi/conformance"
)

func main() {
	os.Exit(run())
}

func run() int {
	var verbose = flag.BoolP("verbose", "v", false, "print every failing case")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: arbsh-bidiconf [-v] <BidiTest.txt>")
		return 2
	}

	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arbsh-bidiconf: %v\n", err)
		return 1
	}
	defer f.Close()

	report, err := conformance.Run(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arbsh-bidiconf: %v\n", err)
		return 1
	}

	if *verbose {
		for _, fail := range report.Failures {
			fmt.Printf("line %d (%s): want %v, got %v\n", fail.Line, fail.Direction, fail.Want, fail.Got)
		}
	}
	fmt.Printf("passed: %d, failed: %d\n", report.Passed, report.Failed)

	if report.Failed > 0 {
		return 1
	}
	return 0
}
