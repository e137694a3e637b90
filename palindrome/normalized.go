package palindrome

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Clean drops every character outside [a-zA-Z0-9] and lower-cases the rest.
func Clean(text string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllLiteralString(text, ""))
}

// Normalized reports whether text is a palindrome once cleaned. Text that
// cleans to nothing is not a palindrome.
func Normalized(text string) bool {
	if text == "" {
		return false
	}
	return twoPointer(Clean(text))
}
