package integer_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/checkbench"
	"github.com/alexshd/checkbench/dataset"
	"github.com/alexshd/checkbench/integer"
)

func accept(inputs ...string) []checkbench.Expectation {
	out := make([]checkbench.Expectation, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, checkbench.Expectation{Input: checkbench.Text(in), Want: true})
	}
	return out
}

func reject(inputs ...string) []checkbench.Expectation {
	out := make([]checkbench.Expectation, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, checkbench.Expectation{Input: checkbench.Text(in), Want: false})
	}
	return out
}

func TestVariants_AcceptValidIntegers(t *testing.T) {
	checkbench.AssertContract(t, integer.Variants(), accept(
		"0", "1", "123", "2147483647", "-2147483648", "+123", "-456", "007",
	))
}

func TestVariants_RejectInvalidInputs(t *testing.T) {
	cases := append([]checkbench.Expectation{{Input: nil, Want: false}}, reject(
		"", " ", "   ", "abc", "12.34", "12a34", "1e10", " 123", "123 ", "12 34",
		"+", "-", "--123", "++123", "+-123",
	)...)
	checkbench.AssertContract(t, integer.Variants(), cases)
}

func TestVariants_RejectOutOfRange(t *testing.T) {
	checkbench.AssertContract(t, integer.Variants(), reject(
		"2147483648", "-2147483649", "9999999999", "-9999999999",
	))
}

func TestVariants_EdgeCases(t *testing.T) {
	checkbench.AssertContract(t, integer.Variants(), accept(
		"-0", "+0", "00000", "000123", "0000000000002147483647", "-0000000002147483648",
	))
}

func TestVariants_BoundaryValues(t *testing.T) {
	checkbench.AssertContract(t, integer.Variants(), append(
		accept(
			strconv.Itoa(math.MaxInt32),
			strconv.Itoa(math.MinInt32),
			strconv.Itoa(math.MaxInt32-1),
			strconv.Itoa(math.MinInt32+1),
		),
		reject(
			strconv.FormatInt(math.MaxInt32+1, 10),
			strconv.FormatInt(math.MinInt32-1, 10),
			"99999999999999999999999999",
		)...,
	))
}

func TestVariants_SignPlacement(t *testing.T) {
	checkbench.AssertContract(t, integer.Variants(), append(
		accept("+1", "+999", "-1", "-999"),
		reject("1-", "1+", "12-34", "12+34")...,
	))
}

// Inputs where the obvious library call is more lenient than the contract.
func TestVariants_RejectLenientForms(t *testing.T) {
	checkbench.AssertContract(t, integer.Variants(), reject(
		"1_000", "0x10", "0b101", "0o17", // base prefixes and separators
		"123\n", "\t1", "1 2", // whitespace the regexp or scanner could skip
		"١٢٣", "12٣", // non-ASCII digits
		"ÿ", "1\xff",
	))
}

func TestVariants_AgreeOnGeneratedCorpus(t *testing.T) {
	c := dataset.Integers(dataset.Seed, dataset.Size)
	for _, cat := range c.Categories() {
		cat := cat
		t.Run(cat, func(t *testing.T) {
			checkbench.AssertEquivalent(t, integer.Variants(), c.Items(cat))
		})
	}
}

// Every generated item has a known answer.
func TestVariants_ClassifyGeneratedCorpus(t *testing.T) {
	for _, seed := range []int64{dataset.Seed, 226} {
		c := dataset.Integers(seed, 2000)
		for _, v := range integer.Variants() {
			for _, cat := range c.Categories() {
				for _, in := range c.Items(cat) {
					want, ok := dataset.Label(cat, in)
					require.True(t, ok, cat)
					if got := v.Check(in); got != want {
						t.Fatalf("seed %d: %s(%q) in %s = %v, want %v", seed, v.Name, in, cat, got, want)
					}
				}
			}
		}
	}
}

// Seed 226 generates the boundary value into the invalid category, and every
// variant accepts it there.
func TestVariants_BoundaryInInvalidCategory(t *testing.T) {
	items := dataset.Integers(226, 300).Items(dataset.Invalid)
	require.Equal(t, "2147483647", items[253])

	for _, v := range integer.Variants() {
		assert.True(t, v.Check(items[253]), v.Name)
	}
}

func TestVariants_Idempotent(t *testing.T) {
	c := dataset.Integers(dataset.Seed, 200)
	for _, cat := range c.Categories() {
		checkbench.AssertIdempotent(t, integer.Variants(), c.Items(cat))
	}
}

func TestVariants_TableOrder(t *testing.T) {
	names := make([]string, 0, 10)
	for _, v := range integer.Variants() {
		names = append(names, v.Name)
		assert.NotEmpty(t, v.Technique, v.Name)
		assert.Nil(t, v.Categories, "%s should run on every category", v.Name)
	}
	assert.Equal(t, []string{
		"parse", "regex", "manual", "bytes", "stream",
		"guarded-parse", "scanner", "matches", "index", "digit-class",
	}, names)
}

func TestVariants_ReturnsCopy(t *testing.T) {
	vs := integer.Variants()
	vs[0].Name = "changed"
	assert.Equal(t, "parse", integer.Variants()[0].Name)
}

func TestLookup(t *testing.T) {
	v, ok := integer.Lookup("scanner")
	require.True(t, ok)
	assert.True(t, v.Check("-42"))

	_, ok = integer.Lookup("nope")
	assert.False(t, ok)
}

func TestIs(t *testing.T) {
	assert.True(t, integer.Is("2147483647"))
	assert.False(t, integer.Is("2147483648"))
}

func FuzzVariantsAgree(f *testing.F) {
	for _, seed := range []string{
		"0", "-0", "+7", "2147483647", "-2147483648", "2147483648", "",
		" 1", "1 ", "abc", "1e10", "--1", "+", "0x1f", "1_0", "٣",
	} {
		f.Add(seed)
	}

	variants := integer.Variants()
	f.Fuzz(func(t *testing.T, in string) {
		want := integer.Is(in)
		for _, v := range variants {
			if got := v.Check(in); got != want {
				t.Fatalf("%s(%q) = %v, parse says %v", v.Name, in, got, want)
			}
		}
	})
}

func TestOracle(t *testing.T) {
	cases := integer.Oracle()
	require.NotEmpty(t, cases)
	assert.Nil(t, cases[0].Input, "absent text leads the table")
	checkbench.AssertContract(t, integer.Variants(), cases)
}
