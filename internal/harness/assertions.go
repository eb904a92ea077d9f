package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/bbcode2md/internal/canon"
)

// checkCase evaluates every expectation of c against its converted output.
// Returns one message per failed expectation, in a fixed order.
func checkCase(c Case, got CaseResult) []string {
	var errs []string
	if c.Expect != nil {
		errs = append(errs, checkExpect(*c.Expect, got.Output)...)
	}
	errs = append(errs, checkContains(c.Contains, got.Output)...)
	errs = append(errs, checkAbsent(c.Absent, got.Output)...)
	errs = append(errs, checkHits(c.Hits, got.Hits)...)
	return errs
}

func checkExpect(want, got string) []string {
	if want == got {
		return nil
	}
	return []string{fmt.Sprintf("output mismatch\n  Expected: %q\n  Actual:   %q", want, got)}
}

func checkContains(wants []string, got string) []string {
	var errs []string
	for _, w := range wants {
		if !strings.Contains(got, w) {
			errs = append(errs, fmt.Sprintf("output does not contain %q\n  Actual: %q", w, got))
		}
	}
	return errs
}

func checkAbsent(unwanted []string, got string) []string {
	var errs []string
	for _, u := range unwanted {
		if strings.Contains(got, u) {
			errs = append(errs, fmt.Sprintf("output contains %q\n  Actual: %q", u, got))
		}
	}
	return errs
}

// checkHits compares rule counts in canonical key order so messages are stable.
// A rule missing from got counts as zero matches.
func checkHits(want, got map[string]int) []string {
	var errs []string
	for _, rule := range canon.SortedKeys(want) {
		if got[rule] != want[rule] {
			errs = append(errs, fmt.Sprintf("rule %s matched %d time(s), expected %d", rule, got[rule], want[rule]))
		}
	}
	return errs
}
