package checkbench

import "fmt"

// Mismatch is one input on which a variant gave the wrong answer.
type Mismatch struct {
	Variant string
	Input   *string
	Got     bool
	Want    bool
	Against string // Reference variant for equivalence checks, empty for oracle checks
}

func (m Mismatch) String() string {
	if m.Against != "" {
		return fmt.Sprintf("%s: %s=%v but %s=%v", describe(m.Input), m.Against, m.Want, m.Variant, m.Got)
	}
	return fmt.Sprintf("%s(%s) = %v, want %v", m.Variant, describe(m.Input), m.Got, m.Want)
}

// CheckContract runs every variant over an oracle table and returns the
// disagreements.
func CheckContract(variants []Variant, cases []Expectation) []Mismatch {
	var out []Mismatch
	for _, v := range variants {
		for _, c := range cases {
			if got := v.Test(c.Input); got != c.Want {
				out = append(out, Mismatch{Variant: v.Name, Input: c.Input, Got: got, Want: c.Want})
			}
		}
	}
	return out
}

// CheckEquivalent compares every variant with the first one on every input.
func CheckEquivalent(variants []Variant, inputs []string) []Mismatch {
	if len(variants) < 2 {
		return nil
	}

	ref := variants[0]
	var out []Mismatch
	for i := range inputs {
		in := inputs[i]
		want := ref.Check(in)
		for _, v := range variants[1:] {
			if got := v.Check(in); got != want {
				out = append(out, Mismatch{Variant: v.Name, Input: &in, Got: got, Want: want, Against: ref.Name})
			}
		}
	}
	return out
}
