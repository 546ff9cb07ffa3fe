package collections_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hasbyte1/go-utilkit/collections"
)

func TestCollectionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("shuffle is a permutation", prop.ForAll(
		func(items []int) bool {
			got := collections.Shuffle(items)
			a := append([]int(nil), items...)
			b := append([]int(nil), got...)
			sort.Ints(a)
			sort.Ints(b)
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.Property("partition covers the input", prop.ForAll(
		func(items []int) bool {
			pass, fail := collections.Partition(items, func(n, _ int) bool { return n > 0 })
			return len(pass)+len(fail) == len(items) &&
				collections.Every(pass, func(n, _ int) bool { return n > 0 }) &&
				collections.Every(fail, func(n, _ int) bool { return n <= 0 })
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.Property("sortBy is ordered", prop.ForAll(
		func(items []int) bool {
			got := collections.SortBy(items, func(n int) int { return n })
			return sort.IntsAreSorted(got)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
