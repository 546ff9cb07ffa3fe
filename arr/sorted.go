package arr

import (
	"cmp"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Binary search over sorted input
//
// These helpers assume items is sorted in ascending order (by fn for the By
// variants). The result is unspecified for unsorted input.
// ─────────────────────────────────────────────────────────────────────────────

// SortedIndex returns the lowest index at which value could be inserted
// while keeping items sorted.
//
//	SortedIndex([]int{30, 50}, 40)      // → 1
//	SortedIndex([]int{4, 5, 5, 5, 6}, 5) // → 1
func SortedIndex[T cmp.Ordered](items []T, value T) int {
	return sort.Search(len(items), func(i int) bool { return items[i] >= value })
}

// SortedLastIndex returns the highest index at which value could be inserted
// while keeping items sorted.
//
//	SortedLastIndex([]int{4, 5, 5, 5, 6}, 5) // → 4
func SortedLastIndex[T cmp.Ordered](items []T, value T) int {
	return sort.Search(len(items), func(i int) bool { return items[i] > value })
}

// SortedIndexBy is [SortedIndex] comparing on the key returned by fn.
func SortedIndexBy[T any, K cmp.Ordered](items []T, value T, fn func(T) K) int {
	k := fn(value)
	return sort.Search(len(items), func(i int) bool { return fn(items[i]) >= k })
}

// SortedLastIndexBy is [SortedLastIndex] comparing on the key returned by fn.
func SortedLastIndexBy[T any, K cmp.Ordered](items []T, value T, fn func(T) K) int {
	k := fn(value)
	return sort.Search(len(items), func(i int) bool { return fn(items[i]) > k })
}

// SortedIndexOf returns the index of the first occurrence of value in a
// sorted slice, or -1.
func SortedIndexOf[T cmp.Ordered](items []T, value T) int {
	i := SortedIndex(items, value)
	if i < len(items) && items[i] == value {
		return i
	}
	return -1
}

// SortedLastIndexOf returns the index of the last occurrence of value in a
// sorted slice, or -1.
func SortedLastIndexOf[T cmp.Ordered](items []T, value T) int {
	i := SortedLastIndex(items, value) - 1
	if i >= 0 && items[i] == value {
		return i
	}
	return -1
}

// SortedUniq removes consecutive duplicates from a sorted slice.
func SortedUniq[T comparable](items []T) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if i == 0 || item != items[i-1] {
			out = append(out, item)
		}
	}
	return out
}
