// Package palindrome implements interchangeable strategies for deciding
// whether a text reads the same forward and backward.
//
// The exact variants compare bytes: case, whitespace and punctuation all
// count, a single byte is a palindrome and the empty string is not. The
// normalized variant first drops every character outside [a-zA-Z0-9] and folds
// case, which is what makes phrases like "Was it a car or a cat I saw"
// palindromes.
package palindrome

import (
	"github.com/alexshd/checkbench"
	"github.com/alexshd/checkbench/dataset"
)

// LengthCategories are the generated categories the exact variants run on.
var LengthCategories = []string{
	dataset.ShortPalindrome, dataset.ShortNonPalindrome,
	dataset.MediumPalindrome, dataset.MediumNonPalindrome,
	dataset.LongPalindrome, dataset.LongNonPalindrome,
}

// Is reports whether text is a non-empty byte-wise palindrome.
func Is(text string) bool {
	return twoPointer(text)
}

var variants = []checkbench.Variant{
	{Name: "two-pointer", Technique: "converging indices", Check: twoPointer, Categories: LengthCategories},
	{Name: "builder", Technique: "reversed copy via strings.Builder, then compare", Check: builder, Categories: LengthCategories},
	{Name: "recursive", Technique: "recursion on (left, right)", Check: recursive, Categories: LengthCategories},
	{Name: "half", Technique: "loop over the first half, mirrored index", Check: half, Categories: LengthCategories},
	{Name: "stream", Technique: "linq.Range over the first half with All", Check: stream, Categories: LengthCategories},
	{Name: "bytes", Technique: "copy to []byte, converging indices", Check: bytesWalk, Categories: LengthCategories},
	{Name: "normalized", Technique: "regexp cleanup, lower-case, converging indices", Check: Normalized, Categories: []string{dataset.Phrase}},
}

// Variants returns the palindrome strategies in benchmark order. The last one
// is the normalizing variant; the others are exact.
func Variants() []checkbench.Variant {
	out := make([]checkbench.Variant, len(variants))
	copy(out, variants)
	return out
}

// Exact returns only the byte-wise variants.
func Exact() []checkbench.Variant {
	out := make([]checkbench.Variant, 0, len(variants)-1)
	for _, v := range variants {
		if v.Name != "normalized" {
			out = append(out, v)
		}
	}
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
