package integer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// inRange is the range and format check shared by the parse-backed variants.
func inRange(s string) bool {
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}

func parse(s string) bool {
	return inRange(s)
}

// guardedParse rejects the common malformed shapes on the first two bytes
// before paying for ParseInt and its error value.
func guardedParse(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if c == '-' || c == '+' {
		if len(s) == 1 || !isDigit(s[1]) {
			return false
		}
	} else if !isDigit(c) {
		return false
	}
	return inRange(s)
}

func stream(s string) bool {
	body, _, ok := splitSign(s)
	if !ok || !lo.EveryBy([]byte(body), isDigit) {
		return false
	}
	return inRange(s)
}

// scanner reads one %d verb into an int32. Fscanf skips leading blanks, so
// whitespace is rejected up front; trailing garbage is what the reader has left.
func scanner(s string) bool {
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}

	r := strings.NewReader(s)
	var v int32
	if _, err := fmt.Fscanf(r, "%d", &v); err != nil {
		return false
	}
	return r.Len() == 0
}

// digitClass accepts any Unicode decimal digit in the first pass; ParseInt
// then rejects the non-ASCII ones.
func digitClass(s string) bool {
	body, _, ok := splitSign(s)
	if !ok {
		return false
	}
	for _, r := range body {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return inRange(s)
}
