package arr

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
//
// Results keep the order of first occurrence in the first input. The By
// variants compare on the key returned by fn instead of the element itself.
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed, keeping the first
// occurrence of each value.
func Uniq[T comparable](items []T) []T {
	return UniqBy(items, identity[T])
}

// UniqBy removes elements whose key (as returned by fn) was already seen.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Union returns the unique values of all slices, in order of first
// appearance.
func Union[T comparable](slices ...[]T) []T {
	return Uniq(Concat(slices...))
}

// UnionBy is [Union] comparing on the key returned by fn.
func UnionBy[T any, K comparable](fn func(T) K, slices ...[]T) []T {
	return UniqBy(Concat(slices...), fn)
}

// Intersection returns the unique values of the first slice that are present
// in every other slice.
func Intersection[T comparable](slices ...[]T) []T {
	return IntersectionBy(identity[T], slices...)
}

// IntersectionBy is [Intersection] comparing on the key returned by fn.
func IntersectionBy[T any, K comparable](fn func(T) K, slices ...[]T) []T {
	if len(slices) == 0 {
		return []T{}
	}
	others := make([]map[K]struct{}, len(slices)-1)
	for i, s := range slices[1:] {
		others[i] = keySet(s, fn)
	}
	return Filter(UniqBy(slices[0], fn), func(item T) bool {
		k := fn(item)
		for _, set := range others {
			if _, ok := set[k]; !ok {
				return false
			}
		}
		return true
	})
}

// Difference returns the elements of items not present in any of others.
// Duplicates in items are kept.
//
//	Difference([]int{2, 1, 2, 3}, []int{1}) // → [2 2 3]
func Difference[T comparable](items []T, others ...[]T) []T {
	return DifferenceBy(identity[T], items, others...)
}

// DifferenceBy is [Difference] comparing on the key returned by fn.
func DifferenceBy[T any, K comparable](fn func(T) K, items []T, others ...[]T) []T {
	exclude := keySet(Concat(others...), fn)
	return Filter(items, func(item T) bool {
		_, found := exclude[fn(item)]
		return !found
	})
}

// Without returns items with every occurrence of values removed.
func Without[T comparable](items []T, values ...T) []T {
	return Difference(items, values)
}

// Xor returns the unique values that appear in exactly one of the slices.
func Xor[T comparable](slices ...[]T) []T {
	counts := make(map[T]int)
	for _, s := range slices {
		for _, item := range Uniq(s) {
			counts[item]++
		}
	}
	return Filter(Union(slices...), func(item T) bool { return counts[item] == 1 })
}

// Filter returns the elements for which fn returns true.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

func keySet[T any, K comparable](items []T, fn func(T) K) map[K]struct{} {
	set := make(map[K]struct{}, len(items))
	for _, item := range items {
		set[fn(item)] = struct{}{}
	}
	return set
}

func identity[T any](v T) T { return v }
