package integer_test

import (
	"testing"

	"github.com/alexshd/checkbench"
	"github.com/alexshd/checkbench/dataset"
	"github.com/alexshd/checkbench/integer"
)

var sink int

// BenchmarkVariants runs every variant on every category of the seeded
// corpus, cycling through the items with a cursor owned by the sub-benchmark.
//
//	go test -bench=Variants/scanner -benchmem ./integer
func BenchmarkVariants(b *testing.B) {
	corpus := dataset.Integers(dataset.Seed, dataset.Size)

	for _, v := range integer.Variants() {
		for _, cat := range corpus.Categories() {
			items := corpus.Items(cat)
			check := v.Check
			b.Run(v.Name+"/"+cat, func(b *testing.B) {
				var cur checkbench.Cursor
				hits := 0
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if check(items[cur.Next(len(items))]) {
						hits++
					}
				}
				sink += hits
			})
		}
	}
}
