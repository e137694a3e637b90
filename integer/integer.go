// Package integer implements interchangeable strategies for deciding whether a
// text is a valid signed 32-bit decimal integer literal.
//
// A valid literal is non-empty, carries at most one leading '+' or '-', has at
// least one ASCII digit and nothing but ASCII digits after the sign, and
// denotes a value in [-2147483648, 2147483647]. Leading zeros are allowed.
// Whitespace anywhere rejects the text.
//
// Every variant returned by Variants agrees with Is on every input.
package integer

import (
	"math"

	"github.com/alexshd/checkbench"
)

// Is reports whether text is a valid signed 32-bit decimal integer literal.
func Is(text string) bool {
	return parse(text)
}

var variants = []checkbench.Variant{
	{Name: "parse", Technique: "strconv.ParseInt with bitSize 32", Check: parse},
	{Name: "regex", Technique: "precompiled regexp2 pattern, then parse", Check: regex},
	{Name: "manual", Technique: "rune walk with int64 accumulator and bound check", Check: manual},
	{Name: "bytes", Technique: "copy to []byte, walk with bound check", Check: bytesWalk},
	{Name: "stream", Technique: "lo.EveryBy digit predicate, then parse", Check: stream},
	{Name: "guarded-parse", Technique: "first-byte guard, then strconv.ParseInt", Check: guardedParse},
	{Name: "scanner", Technique: "fmt.Fscanf %d into int32 with leftover check", Check: scanner},
	{Name: "matches", Technique: "regexp.MatchString compiled per call, then parse", Check: matches},
	{Name: "index", Technique: "indexed byte access with early exit", Check: index},
	{Name: "digit-class", Technique: "unicode.IsDigit per rune, then parse", Check: digitClass},
}

// Variants returns the integer strategies in benchmark order.
func Variants() []checkbench.Variant {
	out := make([]checkbench.Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup returns the variant with the given name.
func Lookup(name string) (checkbench.Variant, bool) {
	for _, v := range variants {
		if v.Name == name {
			return v, true
		}
	}
	return checkbench.Variant{}, false
}

// limit is the largest magnitude allowed for the given sign.
func limit(negative bool) int64 {
	if negative {
		return -math.MinInt32
	}
	return math.MaxInt32
}

// splitSign strips one leading sign. ok is false when nothing but a sign (or
// nothing at all) is left.
func splitSign(s string) (body string, negative, ok bool) {
	if s == "" {
		return "", false, false
	}
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	return s, negative, s != ""
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
