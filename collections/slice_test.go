package collections_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-utilkit/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func isEven(n, _ int) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Slice mode
// ─────────────────────────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	got := collections.Map([]int{1, 2, 3}, func(n, i int) string {
		return strconv.Itoa(n*10 + i)
	})
	assertSlice(t, got, []string{"10", "21", "32"})
}

func TestFilterReject(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assertSlice(t, collections.Filter(items, isEven), []int{2, 4})
	assertSlice(t, collections.Reject(items, isEven), []int{1, 3, 5})
	assertSlice(t, items, []int{1, 2, 3, 4, 5})
}

func TestReduce(t *testing.T) {
	s := collections.Reduce([]int{1, 2, 3}, func(acc string, n, _ int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	if s != "1,2,3" {
		t.Fatalf("Reduce = %q; want \"1,2,3\"", s)
	}
}

func TestEverySome(t *testing.T) {
	if !collections.Every([]int{2, 4}, isEven) {
		t.Fatal("Every should be true")
	}
	if collections.Every([]int{2, 3}, isEven) {
		t.Fatal("Every should be false")
	}
	if !collections.Every([]int{}, isEven) {
		t.Fatal("Every on empty should be true")
	}
	if !collections.Some([]int{1, 2}, isEven) {
		t.Fatal("Some should be true")
	}
	if collections.Some([]int{}, isEven) {
		t.Fatal("Some on empty should be false")
	}
}

func TestFind(t *testing.T) {
	v, i, ok := collections.Find([]int{1, 3, 4, 6}, isEven)
	if !ok || v != 4 || i != 2 {
		t.Fatalf("Find = %v, %d, %v; want 4, 2, true", v, i, ok)
	}
	_, i, ok = collections.Find([]int{1, 3}, isEven)
	if ok || i != -1 {
		t.Fatalf("Find none = %d, %v; want -1, false", i, ok)
	}
}

func TestForEachStops(t *testing.T) {
	var seen []int
	collections.ForEach([]int{1, 2, 3, 4}, func(n, _ int) bool {
		seen = append(seen, n)
		return n < 2
	})
	assertSlice(t, seen, []int{1, 2})
}

func TestGroupBy(t *testing.T) {
	groups := collections.GroupBy([]string{"one", "two", "three"}, func(s string, _ int) int { return len(s) })
	assertSlice(t, groups[3], []string{"one", "two"})
	assertSlice(t, groups[5], []string{"three"})
}

func TestCountBy(t *testing.T) {
	counts := collections.CountBy([]float64{6.1, 4.2, 6.3}, func(f float64, _ int) int { return int(f) })
	if counts[6] != 2 || counts[4] != 1 {
		t.Fatalf("CountBy = %v", counts)
	}
}

func TestKeyBy(t *testing.T) {
	type User struct {
		ID   int
		Name string
	}
	byID := collections.KeyBy([]User{{1, "a"}, {2, "b"}, {1, "c"}}, func(u User) int { return u.ID })
	if len(byID) != 2 || byID[1].Name != "c" {
		t.Fatalf("KeyBy = %v; want last wins", byID)
	}
}

func TestPartition(t *testing.T) {
	pass, fail := collections.Partition([]int{1, 2, 3, 4, 5}, isEven)
	assertSlice(t, pass, []int{2, 4})
	assertSlice(t, fail, []int{1, 3, 5})
}

func TestIncludes(t *testing.T) {
	if !collections.Includes([]string{"a", "b"}, "b") {
		t.Fatal("Includes should be true")
	}
	if collections.Includes([]string{"a"}, "z") {
		t.Fatal("Includes should be false")
	}
}
