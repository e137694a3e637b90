package integer

// The walking variants never allocate a number: they accumulate the magnitude
// in an int64 and stop at the first digit that pushes it past the bound for
// the observed sign.

func manual(s string) bool {
	body, negative, ok := splitSign(s)
	if !ok {
		return false
	}

	bound := limit(negative)
	var v int64
	for _, r := range body {
		if r < '0' || r > '9' {
			return false
		}
		v = v*10 + int64(r-'0')
		if v > bound {
			return false
		}
	}
	return true
}

func bytesWalk(s string) bool {
	b := []byte(s)
	if len(b) == 0 {
		return false
	}

	i, negative := 0, false
	if b[0] == '-' || b[0] == '+' {
		negative = b[0] == '-'
		i = 1
	}
	if i == len(b) {
		return false
	}

	bound := limit(negative)
	var v int64
	for ; i < len(b); i++ {
		if !isDigit(b[i]) {
			return false
		}
		v = v*10 + int64(b[i]-'0')
		if v > bound {
			return false
		}
	}
	return true
}

func index(s string) bool {
	n := len(s)
	if n == 0 {
		return false
	}

	start := 0
	if c := s[0]; c == '-' || c == '+' {
		if n == 1 {
			return false
		}
		start = 1
	}

	bound := limit(s[0] == '-')
	var v int64
	for i := start; i < n; i++ {
		d := s[i] - '0'
		if d > 9 {
			return false
		}
		if v = v*10 + int64(d); v > bound {
			return false
		}
	}
	return true
}
