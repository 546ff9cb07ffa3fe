package collections

import (
	"cmp"
	"slices"
)

// Order selects the direction of an [Ordering].
type Order int

const (
	// Asc sorts smaller keys first.
	Asc Order = iota
	// Desc sorts larger keys first.
	Desc
)

// Ordering compares two elements. It returns a negative number when a sorts
// before b, a positive number when a sorts after b, and zero otherwise.
type Ordering[T any] func(a, b T) int

// By builds an [Ordering] from a key function and a direction.
func By[T any, K cmp.Ordered](key func(T) K, order Order) Ordering[T] {
	return func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		if order == Desc {
			return -c
		}
		return c
	}
}

// SortBy returns a copy of items sorted in ascending order of key.
// The sort is stable: equal elements keep their original order.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return OrderBy(items, By(key, Asc))
}

// OrderBy returns a copy of items sorted by orderings in priority order:
// later orderings only break ties left by earlier ones. The sort is stable,
// and with no orderings the copy keeps the input order.
func OrderBy[T any](items []T, orderings ...Ordering[T]) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		for _, o := range orderings {
			if c := o(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}
