package arr_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hasbyte1/go-utilkit/arr"
)

func TestArrProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("chunks flatten back to the input", prop.ForAll(
		func(items []int, size int) bool {
			flat := arr.Flatten(arr.Chunk(items, size))
			if len(flat) != len(items) {
				return false
			}
			for i := range flat {
				if flat[i] != items[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
		gen.IntRange(1, 10),
	))

	properties.Property("uniq output has no duplicates", prop.ForAll(
		func(items []int) bool {
			seen := map[int]bool{}
			for _, v := range arr.Uniq(items) {
				if seen[v] {
					return false
				}
				seen[v] = true
			}
			return len(seen) == len(arr.Uniq(items))
		},
		gen.SliceOf(gen.IntRange(0, 20)),
	))

	properties.Property("sorted index keeps order", prop.ForAll(
		func(items []int, value int) bool {
			sort.Ints(items)
			i := arr.SortedIndex(items, value)
			j := arr.SortedLastIndex(items, value)
			if i > j {
				return false
			}
			if i > 0 && items[i-1] >= value {
				return false
			}
			return j == len(items) || items[j] > value
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
		gen.IntRange(-60, 60),
	))

	properties.TestingRun(t)
}
