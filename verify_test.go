package checkbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckContract(t *testing.T) {
	variants := []Variant{
		{Name: "nonempty", Check: func(s string) bool { return s != "" }},
		{Name: "always", Check: func(string) bool { return true }},
	}
	cases := []Expectation{
		{Input: nil, Want: false},
		{Input: Text(""), Want: false},
		{Input: Text("x"), Want: true},
	}

	got := CheckContract(variants, cases)
	require.Len(t, got, 1, "only always accepts the empty string")
	assert.Equal(t, "always", got[0].Variant)
	assert.Equal(t, `always("") = true, want false`, got[0].String())
}

func TestCheckEquivalent(t *testing.T) {
	ref := Variant{Name: "ref", Check: func(s string) bool { return len(s) > 1 }}
	same := Variant{Name: "same", Check: func(s string) bool { return len(s) >= 2 }}
	off := Variant{Name: "off", Check: func(s string) bool { return len(s) > 2 }}

	assert.Empty(t, CheckEquivalent([]Variant{ref, same}, []string{"", "a", "ab", "abc"}))
	assert.Empty(t, CheckEquivalent([]Variant{ref}, []string{"ab"}), "nothing to compare")

	got := CheckEquivalent([]Variant{ref, same, off}, []string{"a", "ab", "abc"})
	require.Len(t, got, 1)
	assert.Equal(t, "off", got[0].Variant)
	assert.Equal(t, "ab", *got[0].Input)
	assert.Equal(t, `"ab": ref=true but off=false`, got[0].String())
}
