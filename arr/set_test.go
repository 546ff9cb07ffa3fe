package arr_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-utilkit/arr"
)

func TestUniq(t *testing.T) {
	assertSlice(t, arr.Uniq([]int{1, 2, 2, 3, 1, 3}), []int{1, 2, 3})
}

func TestUniqBy(t *testing.T) {
	type P struct{ ID, Val int }
	got := arr.UniqBy([]P{{1, 10}, {2, 20}, {1, 99}}, func(p P) int { return p.ID })
	if len(got) != 2 || got[0].Val != 10 {
		t.Fatalf("UniqBy = %v; want first occurrence kept", got)
	}
}

func TestUnion(t *testing.T) {
	assertSlice(t, arr.Union([]int{2}, []int{1, 2}, []int{3, 1}), []int{2, 1, 3})
	got := arr.UnionBy(strings.ToLower, []string{"A", "b"}, []string{"a", "C"})
	assertSlice(t, got, []string{"A", "b", "C"})
}

func TestIntersection(t *testing.T) {
	assertSlice(t, arr.Intersection([]int{1, 2, 3, 2}, []int{2, 3, 4}, []int{3, 2}), []int{2, 3})
	assertSlice(t, arr.Intersection([]int{1, 2}), []int{1, 2})
	assertSlice(t, arr.Intersection[int](), []int{})
	got := arr.IntersectionBy(strings.ToLower, []string{"Go", "Rust"}, []string{"go", "zig"})
	assertSlice(t, got, []string{"Go"})
}

func TestDifference(t *testing.T) {
	assertSlice(t, arr.Difference([]int{2, 1, 2, 3}, []int{1}), []int{2, 2, 3})
	assertSlice(t, arr.Difference([]int{1, 2, 3, 4, 5}, []int{2}, []int{4}), []int{1, 3, 5})
	assertSlice(t, arr.Difference([]int{1, 2}), []int{1, 2})
	got := arr.DifferenceBy(func(f float64) int { return int(f) }, []float64{2.1, 1.2}, []float64{2.3})
	assertSlice(t, got, []float64{1.2})
}

func TestWithout(t *testing.T) {
	assertSlice(t, arr.Without([]int{2, 1, 2, 3}, 1, 2), []int{3})
}

func TestXor(t *testing.T) {
	assertSlice(t, arr.Xor([]int{2, 1}, []int{2, 3}), []int{1, 3})
	assertSlice(t, arr.Xor([]int{1, 1, 2}, []int{2, 3}, []int{3, 4}), []int{1, 4})
}
