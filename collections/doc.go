// Package collections provides dual-mode iteration helpers: every operation
// accepts either an ordered slice or a keyed map and applies the same
// callback contract to both.
//
// # Slice mode
//
// Callbacks receive (item, index):
//
//	evens := collections.Filter([]int{1, 2, 3, 4}, func(n, _ int) bool { return n%2 == 0 })
//	total := collections.Reduce([]int{1, 2, 3}, func(acc, n, _ int) int { return acc + n }, 0)
//
// # Keyed mode
//
// Functions with an Entries suffix take a map[K]V and call back with
// (value, key). Keys are visited in ascending order, so results are
// deterministic even though Go map iteration is not:
//
//	prices := map[string]float64{"pear": 2, "apple": 1, "fig": 3}
//	cheap  := collections.FilterEntries(prices, func(p float64, _ string) bool { return p < 3 })
//	// → [1 2]  (apple, pear)
//
// # Immutability
//
// No function mutates its input. Sorting and shuffling return copies, and
// grouping builds fresh slices.
//
// # Ordering
//
// [SortBy] sorts by a single ordered key. [OrderBy] accepts several
// [Ordering] values built with [By], each ascending or descending, and
// applies them in priority order:
//
//	collections.OrderBy(users,
//	    collections.By(func(u User) string { return u.Team }, collections.Asc),
//	    collections.By(func(u User) int { return u.Age }, collections.Desc),
//	)
package collections
