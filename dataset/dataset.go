// Package dataset builds the seeded input corpora the benchmarks cycle through.
//
// Every corpus is generated once, from a fixed seed, and never modified
// afterwards. Two corpora built from the same seed and size are byte-identical;
// Digest makes that checkable across runs and machines.
package dataset

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const (
	// Seed is the default generator seed.
	Seed int64 = 42

	// Size is the default number of items per category.
	Size = 10000
)

// Integer categories.
const (
	Valid   = "valid"
	Large   = "large"
	Invalid = "invalid"
)

// Palindrome categories.
const (
	ShortPalindrome     = "short-palindrome"
	ShortNonPalindrome  = "short-non-palindrome"
	MediumPalindrome    = "medium-palindrome"
	MediumNonPalindrome = "medium-non-palindrome"
	LongPalindrome      = "long-palindrome"
	LongNonPalindrome   = "long-non-palindrome"
	Phrase              = "phrase"
)

// Lengths of the generated palindrome categories.
const (
	ShortLength  = 5
	MediumLength = 20
	LongLength   = 100
)

// Phrases is the fixed rotation drawn from for the Phrase category.
var Phrases = [...]string{
	"A man a plan a canal Panama",
	"race car",
	"Was it a car or a cat I saw",
	"Madam Im Adam",
	"hello world",
	"not a palindrome at all",
}

// Corpus is an immutable set of equally sized, named categories.
type Corpus struct {
	name  string
	order []string
	items map[string][]string
}

func newCorpus(name string, size int, categories ...string) *Corpus {
	c := &Corpus{
		name:  name,
		order: categories,
		items: make(map[string][]string, len(categories)),
	}
	for _, cat := range categories {
		c.items[cat] = make([]string, 0, size)
	}
	return c
}

func (c *Corpus) add(category, item string) {
	c.items[category] = append(c.items[category], item)
}

// Name returns the corpus name ("integer" or "palindrome").
func (c *Corpus) Name() string { return c.name }

// Categories returns the category names in generation order.
func (c *Corpus) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of items in every category.
func (c *Corpus) Len() int {
	if len(c.order) == 0 {
		return 0
	}
	return len(c.items[c.order[0]])
}

// Items returns a copy of the items of a category, or nil if it does not exist.
func (c *Corpus) Items(category string) []string {
	items, ok := c.items[category]
	if !ok {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// Digest returns a hex xxhash64 over one category. Items are length-prefixed so
// that ("ab","c") and ("a","bc") hash differently.
func (c *Corpus) Digest(category string) string {
	h := xxhash.New()
	writeItems(h, c.items[category])
	return fmt.Sprintf("%016x", h.Sum64())
}

// CorpusDigest returns a hex xxhash64 over every category in order.
func (c *Corpus) CorpusDigest() string {
	h := xxhash.New()
	for _, cat := range c.order {
		_, _ = h.WriteString(cat)
		writeItems(h, c.items[cat])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func writeItems(h *xxhash.Digest, items []string) {
	var n [8]byte
	for _, item := range items {
		binary.LittleEndian.PutUint64(n[:], uint64(len(item)))
		_, _ = h.Write(n[:])
		_, _ = h.WriteString(item)
	}
}

// Integers generates the integer corpus. Per index the draws are taken in the
// order valid, large, invalid.
func Integers(seed int64, size int) *Corpus {
	rnd := NewSource(seed)
	c := newCorpus("integer", size, Valid, Large, Invalid)

	for i := 0; i < size; i++ {
		c.add(Valid, itoa(rnd.Intn(1000000)))
		c.add(Large, itoa(math.MaxInt32-rnd.Intn(1000)))
		c.add(Invalid, invalidInteger(rnd))
	}
	return c
}

// invalidInteger draws one malformed integer literal. Kind 5 is MaxInt32 plus
// an offset in [0, 1e6), so a zero offset yields the boundary value itself.
func invalidInteger(rnd *Source) string {
	switch kind := rnd.Intn(8); kind {
	case 0:
		return "abc" + itoa(rnd.Intn(1000))
	case 1:
		return itoa(rnd.Intn(1000)) + "xyz"
	case 2:
		whole := itoa(rnd.Intn(100))
		return whole + "." + itoa(rnd.Intn(100))
	case 3:
		return " " + itoa(rnd.Intn(1000))
	case 4:
		return itoa(rnd.Intn(1000)) + " "
	case 5:
		return strconv.FormatInt(math.MaxInt32+int64(rnd.Intn(1000000)), 10)
	case 6:
		return itoa(rnd.Intn(1000)) + "e10"
	case 7:
		return "abc123def"
	default:
		panic(fmt.Sprintf("dataset: invalid integer kind %d", kind))
	}
}

// Label returns the answer a correct predicate gives for an item generated
// into category. ok is false for categories with mixed answers (phrases) and
// for unknown categories.
//
// Invalid items are false except the boundary MaxInt32 that kind 5 produces
// for a zero offset.
func Label(category, item string) (want, ok bool) {
	switch category {
	case Valid, Large:
		return true, true
	case Invalid:
		return item == maxInt32, true
	case ShortPalindrome, MediumPalindrome, LongPalindrome:
		return true, true
	case ShortNonPalindrome, MediumNonPalindrome, LongNonPalindrome:
		return false, true
	default:
		return false, false
	}
}

var maxInt32 = strconv.FormatInt(math.MaxInt32, 10)

// Palindromes generates the palindrome corpus. Per index the draws are taken
// in the order short, medium, long (palindrome before non-palindrome), phrase.
func Palindromes(seed int64, size int) *Corpus {
	rnd := NewSource(seed)
	c := newCorpus("palindrome", size,
		ShortPalindrome, ShortNonPalindrome,
		MediumPalindrome, MediumNonPalindrome,
		LongPalindrome, LongNonPalindrome,
		Phrase,
	)

	for i := 0; i < size; i++ {
		c.add(ShortPalindrome, palindrome(rnd, ShortLength))
		c.add(ShortNonPalindrome, nonPalindrome(rnd, ShortLength))
		c.add(MediumPalindrome, palindrome(rnd, MediumLength))
		c.add(MediumNonPalindrome, nonPalindrome(rnd, MediumLength))
		c.add(LongPalindrome, palindrome(rnd, LongLength))
		c.add(LongNonPalindrome, nonPalindrome(rnd, LongLength))
		c.add(Phrase, Phrases[rnd.Intn(int32(len(Phrases)))])
	}
	return c
}

func palindrome(rnd *Source, n int) string {
	half := make([]byte, n/2, n)
	for i := range half {
		half[i] = letter(rnd)
	}

	out := half
	if n%2 == 1 {
		out = append(out, letter(rnd))
	}
	for i := len(half) - 1; i >= 0; i-- {
		out = append(out, half[i])
	}
	return string(out)
}

func nonPalindrome(rnd *Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letter(rnd)
	}
	if mirrored(b) {
		b[0] = 'a' + (b[0]-'a'+1)%26
	}
	return string(b)
}

func letter(rnd *Source) byte {
	return byte('a' + rnd.Intn(26))
}

func mirrored(b []byte) bool {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		if b[i] != b[j] {
			return false
		}
	}
	return true
}

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
