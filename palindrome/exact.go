package palindrome

import (
	"strings"

	"github.com/ahmetb/go-linq/v3"
)

func twoPointer(s string) bool {
	if s == "" {
		return false
	}
	for left, right := 0, len(s)-1; left < right; left, right = left+1, right-1 {
		if s[left] != s[right] {
			return false
		}
	}
	return true
}

func builder(s string) bool {
	if s == "" {
		return false
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := len(s) - 1; i >= 0; i-- {
		b.WriteByte(s[i])
	}
	return b.String() == s
}

func recursive(s string) bool {
	if s == "" {
		return false
	}
	return mirror(s, 0, len(s)-1)
}

func mirror(s string, left, right int) bool {
	if left >= right {
		return true
	}
	if s[left] != s[right] {
		return false
	}
	return mirror(s, left+1, right-1)
}

func half(s string) bool {
	n := len(s)
	if n == 0 {
		return false
	}
	for i := 0; i < n/2; i++ {
		if s[i] != s[n-1-i] {
			return false
		}
	}
	return true
}

func stream(s string) bool {
	n := len(s)
	if n == 0 {
		return false
	}
	return linq.Range(0, n/2).All(func(i interface{}) bool {
		k := i.(int)
		return s[k] == s[n-1-k]
	})
}

func bytesWalk(s string) bool {
	b := []byte(s)
	if len(b) == 0 {
		return false
	}
	i, j := 0, len(b)-1
	for i < j {
		if b[i] != b[j] {
			return false
		}
		i++
		j--
	}
	return true
}
