package checkbench

import (
	"sort"

	"github.com/samber/lo"
)

// Ranking orders the variants measured on one (suite, category) pair.
type Ranking struct {
	Suite    string      `json:"suite"`
	Category string      `json:"category"`
	Entries  []RankEntry `json:"entries"`
}

// RankEntry is one variant's place in a Ranking.
type RankEntry struct {
	Variant string  `json:"variant"`
	Mean    float64 `json:"mean_ns"`

	// Relative is Mean divided by the fastest variant's mean, so the winner
	// has 1 and a variant twice as slow has 2.
	Relative float64 `json:"relative"`

	// Tied is set when the confidence interval overlaps the winner's.
	Tied bool `json:"tied"`
}

type group struct{ suite, category string }

// Rank groups summaries by suite and category, in order of first
// appearance, and orders each group fastest first.
func Rank(summaries []Summary) []Ranking {
	keyOf := func(s Summary) group { return group{s.Case.Suite, s.Case.Category} }
	groups := lo.GroupBy(summaries, keyOf)
	order := lo.Uniq(lo.Map(summaries, func(s Summary, _ int) group { return keyOf(s) }))

	rankings := make([]Ranking, 0, len(order))
	for _, key := range order {
		members := append([]Summary(nil), groups[key]...)
		sort.SliceStable(members, func(i, j int) bool { return members[i].Mean < members[j].Mean })

		best := members[0]
		r := Ranking{Suite: key.suite, Category: key.category}
		for _, s := range members {
			e := RankEntry{Variant: s.Case.Variant, Mean: s.Mean, Relative: 1}
			if best.Mean > 0 {
				e.Relative = s.Mean / best.Mean
			}
			e.Tied = s.Case != best.Case && s.CILower <= best.CIUpper
			r.Entries = append(r.Entries, e)
		}
		rankings = append(rankings, r)
	}
	return rankings
}
