package dataset

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reversed(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func TestIntegers_Shape(t *testing.T) {
	c := Integers(Seed, Size)

	assert.Equal(t, "integer", c.Name())
	assert.Equal(t, []string{Valid, Large, Invalid}, c.Categories())
	assert.Equal(t, Size, c.Len())
	for _, cat := range c.Categories() {
		assert.Len(t, c.Items(cat), Size, cat)
	}
	assert.Nil(t, c.Items("missing"))
}

// The first items match what the JMH harness generates with new Random(42).
func TestIntegers_MatchesReferenceHarness(t *testing.T) {
	c := Integers(Seed, Size)

	assert.Equal(t, []string{"431130", "969970", "118093"}, c.Items(Valid)[:3])
	assert.Equal(t, []string{"2147482884", "2147483122", "2147483465"}, c.Items(Large)[:3])
	assert.Equal(t,
		[]string{"2148432531", "18.19", " 276", "2148172103", "abc123def", " 913"},
		c.Items(Invalid)[:6])

	assert.Equal(t, "527725", c.Items(Valid)[Size-1])
	assert.Equal(t, "2147483382", c.Items(Large)[Size-1])
	assert.Equal(t, "2147964367", c.Items(Invalid)[Size-1])
}

func TestIntegers_Ranges(t *testing.T) {
	c := Integers(Seed, 2000)

	for _, s := range c.Items(Valid) {
		v, err := strconv.Atoi(s)
		require.NoError(t, err)
		assert.True(t, v >= 0 && v < 1000000, s)
	}
	for _, s := range c.Items(Large) {
		v, err := strconv.Atoi(s)
		require.NoError(t, err)
		assert.True(t, v > 2147483647-1000 && v <= 2147483647, s)
	}
}

func TestPalindromes_Shape(t *testing.T) {
	c := Palindromes(Seed, Size)

	assert.Equal(t, "palindrome", c.Name())
	assert.Len(t, c.Categories(), 7)
	assert.Equal(t, Size, c.Len())
}

func TestPalindromes_MatchesReferenceHarness(t *testing.T) {
	c := Palindromes(Seed, Size)

	assert.Equal(t, []string{"ahwha", "fedef"}, c.Items(ShortPalindrome)[:2])
	assert.Equal(t, []string{"marnq", "waatt"}, c.Items(ShortNonPalindrome)[:2])
	assert.Equal(t, []string{"dpaaiguewiiweugiaapd", "xbgtquydtqqtdyuqtgbx"}, c.Items(MediumPalindrome)[:2])
	assert.Equal(t, []string{"lzorarzvmgtymkshhvgl", "dgoyrscidnlnpvztxtzu"}, c.Items(MediumNonPalindrome)[:2])
	assert.Equal(t, []string{"A man a plan a canal Panama", "Was it a car or a cat I saw"}, c.Items(Phrase)[:2])
}

func TestPalindromes_CategoriesHoldWhatTheyClaim(t *testing.T) {
	c := Palindromes(Seed, 3000)

	lengths := map[string]int{
		ShortPalindrome: ShortLength, ShortNonPalindrome: ShortLength,
		MediumPalindrome: MediumLength, MediumNonPalindrome: MediumLength,
		LongPalindrome: LongLength, LongNonPalindrome: LongLength,
	}
	palindromic := map[string]bool{
		ShortPalindrome: true, MediumPalindrome: true, LongPalindrome: true,
	}

	for cat, n := range lengths {
		for _, s := range c.Items(cat) {
			require.Len(t, s, n, cat)
			require.Equal(t, palindromic[cat], s == reversed(s), "%s: %q", cat, s)
		}
	}

	for _, s := range c.Items(Phrase) {
		assert.Contains(t, Phrases[:], s)
	}
}

func TestCorpus_Deterministic(t *testing.T) {
	a, b := Integers(Seed, Size), Integers(Seed, Size)
	assert.Equal(t, a.CorpusDigest(), b.CorpusDigest())
	for _, cat := range a.Categories() {
		assert.Equal(t, a.Items(cat), b.Items(cat))
		assert.Equal(t, a.Digest(cat), b.Digest(cat))
	}

	p, q := Palindromes(Seed, Size), Palindromes(Seed, Size)
	assert.Equal(t, p.CorpusDigest(), q.CorpusDigest())

	other := Integers(Seed+1, Size)
	assert.NotEqual(t, a.CorpusDigest(), other.CorpusDigest())
}

func TestCorpus_ItemsReturnsCopy(t *testing.T) {
	c := Integers(Seed, 10)
	before := c.Digest(Valid)

	items := c.Items(Valid)
	items[0] = "tampered"

	assert.Equal(t, before, c.Digest(Valid))
	assert.NotEqual(t, "tampered", c.Items(Valid)[0])
}

func TestCorpus_DigestLengthPrefixed(t *testing.T) {
	a := newCorpus("x", 2, "c")
	a.add("c", "ab")
	a.add("c", "c")
	b := newCorpus("x", 2, "c")
	b.add("c", "a")
	b.add("c", "bc")

	assert.NotEqual(t, a.Digest("c"), b.Digest("c"))
}

func TestInvalidInteger_AllKindsReachable(t *testing.T) {
	c := Integers(Seed, Size)
	seen := map[string]bool{}
	for _, s := range c.Items(Invalid) {
		switch {
		case len(s) > 3 && s[:3] == "abc" && s != "abc123def":
			seen["alpha-prefix"] = true
		case len(s) > 3 && s[len(s)-3:] == "xyz":
			seen["alpha-suffix"] = true
		case len(s) > 3 && s[len(s)-3:] == "e10":
			seen["scientific"] = true
		case s == "abc123def":
			seen["alpha"] = true
		case s[0] == ' ':
			seen["leading-space"] = true
		case s[len(s)-1] == ' ':
			seen["trailing-space"] = true
		case len(s) == 10:
			seen["out-of-range"] = true
		default:
			seen["decimal"] = true
		}
	}
	assert.Len(t, seen, 8)
}

// Seed 226 draws kind 5 with a zero offset at index 253, producing the
// boundary value inside the invalid category.
func TestIntegers_InvalidCanHoldBoundary(t *testing.T) {
	items := Integers(226, 300).Items(Invalid)
	require.Equal(t, "2147483647", items[253])

	want, ok := Label(Invalid, items[253])
	assert.True(t, ok)
	assert.True(t, want, "the boundary value is a valid integer")
}

func TestLabel(t *testing.T) {
	tests := []struct {
		category, item string
		want, ok       bool
	}{
		{Valid, "123", true, true},
		{Large, "2147483000", true, true},
		{Invalid, "abc123def", false, true},
		{Invalid, "2147483648", false, true},
		{Invalid, "2147483647", true, true},
		{ShortPalindrome, "abcba", true, true},
		{LongNonPalindrome, "ab", false, true},
		{Phrase, "race car", false, false},
		{"unknown", "x", false, false},
	}
	for _, tt := range tests {
		want, ok := Label(tt.category, tt.item)
		if want != tt.want || ok != tt.ok {
			t.Errorf("Label(%s, %q) = %v, %v; want %v, %v", tt.category, tt.item, want, ok, tt.want, tt.ok)
		}
	}
}
