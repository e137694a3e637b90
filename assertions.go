package checkbench

import (
	"fmt"
	"strings"
	"testing"
)

// Expectation is one oracle entry: an input and the answer every variant
// must give for it. A nil Input stands for absent text.
type Expectation struct {
	Input *string
	Want  bool
}

// Text returns a pointer to s, for building expectations inline.
func Text(s string) *string {
	return &s
}

func describe(text *string) string {
	if text == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%q", *text)
}

// AssertContract verifies every variant against an oracle table.
//
// Each variant runs in its own subtest so one broken strategy does not hide
// the others.
func AssertContract(t *testing.T, variants []Variant, cases []Expectation) {
	t.Helper()

	for _, v := range variants {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			t.Helper()

			mismatches := CheckContract([]Variant{v}, cases)
			if len(mismatches) > 0 {
				lines := make([]string, len(mismatches))
				for i, m := range mismatches {
					lines[i] = "  " + m.String()
				}
				t.Errorf("%s violates the contract on %d of %d inputs:\n%s",
					v.Name, len(mismatches), len(cases), strings.Join(lines, "\n"))
				return
			}
			t.Logf("✓ %s: %d oracle inputs", v.Name, len(cases))
		})
	}
}

// AssertEquivalent verifies that all variants give the same answer on every
// input. The first variant is the reference.
func AssertEquivalent(t *testing.T, variants []Variant, inputs []string) {
	t.Helper()

	if len(variants) < 2 {
		t.Fatalf("need at least 2 variants to compare, got %d", len(variants))
	}

	mismatches := CheckEquivalent(variants, inputs)
	for i, m := range mismatches {
		if i == 10 {
			t.Errorf("... %d disagreements in total", len(mismatches))
			break
		}
		t.Error(m.String())
	}
	if len(mismatches) == 0 {
		t.Logf("✓ %d variants agree on %d inputs", len(variants), len(inputs))
	}
}

// AssertIdempotent verifies that evaluating a variant twice on the same input
// gives the same answer.
func AssertIdempotent(t *testing.T, variants []Variant, inputs []string) {
	t.Helper()

	for _, v := range variants {
		for _, in := range inputs {
			first, second := v.Check(in), v.Check(in)
			if first != second {
				t.Errorf("%s(%q) changed its answer: %v then %v", v.Name, in, first, second)
			}
		}
	}
}
