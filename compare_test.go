package checkbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(suite, variant, category string, mean, margin float64) Summary {
	return Summary{
		Case:    CaseID{suite, variant, category},
		Mean:    mean,
		CILower: mean - margin,
		CIUpper: mean + margin,
	}
}

func TestRank_GroupsAndOrders(t *testing.T) {
	rankings := Rank([]Summary{
		summary("integer", "parse", "valid", 20, 1),
		summary("integer", "regex", "valid", 200, 5),
		summary("integer", "manual", "valid", 10, 1),
		summary("integer", "parse", "invalid", 50, 1),
		summary("integer", "manual", "invalid", 12, 1),
		summary("palindrome", "half", "phrase", 3, 1),
	})

	require.Len(t, rankings, 3)
	assert.Equal(t, "valid", rankings[0].Category)
	assert.Equal(t, "invalid", rankings[1].Category)
	assert.Equal(t, "palindrome", rankings[2].Suite)

	valid := rankings[0].Entries
	require.Len(t, valid, 3)
	assert.Equal(t, []string{"manual", "parse", "regex"},
		[]string{valid[0].Variant, valid[1].Variant, valid[2].Variant})
	assert.Equal(t, 1.0, valid[0].Relative)
	assert.Equal(t, 2.0, valid[1].Relative)
	assert.Equal(t, 20.0, valid[2].Relative)
}

func TestRank_TiedWhenIntervalsOverlap(t *testing.T) {
	rankings := Rank([]Summary{
		summary("s", "a", "c", 10, 2), // [8, 12]
		summary("s", "b", "c", 11, 2), // [9, 13] overlaps
		summary("s", "d", "c", 20, 2), // [18, 22] does not
	})

	entries := rankings[0].Entries
	assert.False(t, entries[0].Tied, "the winner is never tied with itself")
	assert.True(t, entries[1].Tied)
	assert.False(t, entries[2].Tied)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}
