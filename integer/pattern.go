package integer

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

const literal = `^[+-]?[0-9]+$`

// integerPattern uses \A and \z: in regexp2, as in .NET, $ also matches
// before a trailing newline.
var integerPattern = regexp2.MustCompile(`\A[+-]?[0-9]+\z`, regexp2.None)

func regex(s string) bool {
	ok, err := integerPattern.MatchString(s)
	if err != nil || !ok {
		return false
	}
	return inRange(s)
}

// matches compiles the pattern on every call.
func matches(s string) bool {
	ok, err := regexp.MatchString(literal, s)
	if err != nil || !ok {
		return false
	}
	return inRange(s)
}
