package palindrome

import (
	"strings"

	"github.com/alexshd/checkbench"
)

func expectations(want bool, inputs ...string) []checkbench.Expectation {
	out := make([]checkbench.Expectation, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, checkbench.Expectation{Input: checkbench.Text(in), Want: want})
	}
	return out
}

// Oracle returns the reference answers for the exact variants.
func Oracle() []checkbench.Expectation {
	out := []checkbench.Expectation{{Input: nil, Want: false}}
	out = append(out, expectations(true,
		"a", "aa", "aba", "abba", "racecar", "12321", "AbA", "a b a", "!@#@!", "\xc3\xc3",
		strings.Repeat("xy", 500)+strings.Repeat("yx", 500),
	)...)
	out = append(out, expectations(false,
		"", "ab", "abc", "hello", "Aa", " aa", "a!b@a", "é", "aéa",
		strings.Repeat("xy", 500),
	)...)
	return out
}

// NormalizedOracle returns the reference answers for the normalized variant.
func NormalizedOracle() []checkbench.Expectation {
	return append(
		expectations(true, "A man a plan a canal Panama", "Was it a car or a cat I saw?", "Madam, I'm Adam", "a"),
		expectations(false, "", "!!!", "   ", "hello world", "not a palindrome")...,
	)
}
