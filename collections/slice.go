package collections

// ─────────────────────────────────────────────────────────────────────────────
// Slice mode: callbacks receive (item, index)
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Reduce folds items into a single value, starting from initial.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// Every reports whether fn returns true for every element.
// It is true for an empty slice.
func Every[T any](items []T, fn func(T, int) bool) bool {
	for i, item := range items {
		if !fn(item, i) {
			return false
		}
	}
	return true
}

// Some reports whether fn returns true for at least one element.
// It is false for an empty slice.
func Some[T any](items []T, fn func(T, int) bool) bool {
	for i, item := range items {
		if fn(item, i) {
			return true
		}
	}
	return false
}

// Find returns the first element satisfying fn together with its index.
// Returns the zero value, -1 and false when nothing matches.
func Find[T any](items []T, fn func(T, int) bool) (T, int, bool) {
	for i, item := range items {
		if fn(item, i) {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// ForEach calls fn(item, index) for each element until fn returns false.
func ForEach[T any](items []T, fn func(T, int) bool) {
	for i, item := range items {
		if !fn(item, i) {
			return
		}
	}
}

// GroupBy groups elements by the key returned by fn. Elements keep their
// relative order within a group.
func GroupBy[T any, G comparable](items []T, fn func(T, int) G) map[G][]T {
	groups := make(map[G][]T)
	for i, item := range items {
		g := fn(item, i)
		groups[g] = append(groups[g], item)
	}
	return groups
}

// CountBy counts elements per key returned by fn.
func CountBy[T any, G comparable](items []T, fn func(T, int) G) map[G]int {
	counts := make(map[G]int)
	for i, item := range items {
		counts[fn(item, i)]++
	}
	return counts
}

// KeyBy indexes elements by the key returned by fn.
// When several elements share a key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// Partition splits items into those satisfying fn and those that do not.
func Partition[T any](items []T, fn func(T, int) bool) (pass, fail []T) {
	pass, fail = make([]T, 0), make([]T, 0)
	for i, item := range items {
		if fn(item, i) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Includes reports whether value is an element of items.
func Includes[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}
