package integer

import "github.com/alexshd/checkbench"

// Oracle returns the reference answers every variant must reproduce. It
// covers signs, padding, the 32-bit bounds and the lenient forms library
// parsers tend to accept.
func Oracle() []checkbench.Expectation {
	out := []checkbench.Expectation{{Input: nil, Want: false}}
	add := func(want bool, inputs ...string) {
		for _, in := range inputs {
			out = append(out, checkbench.Expectation{Input: checkbench.Text(in), Want: want})
		}
	}

	add(true,
		"0", "1", "123", "+123", "-456", "007", "-0", "+0", "00000",
		"2147483647", "-2147483648", "0000000000002147483647",
	)
	add(false,
		"", " ", "abc", "12.34", "12a34", "1e10", " 123", "123 ", "12 34",
		"+", "-", "--123", "+-123", "1-", "12+34",
		"2147483648", "-2147483649", "99999999999999999999999999",
		"1_000", "0x10", "123\n", "١٢٣", "1\xff",
	)
	return out
}
