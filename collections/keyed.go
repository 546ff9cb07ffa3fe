package collections

import (
	"cmp"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Keyed mode: callbacks receive (value, key); keys are visited in ascending
// order.
// ─────────────────────────────────────────────────────────────────────────────

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// MapEntries applies fn(value, key) to each entry and returns the results in
// key order.
func MapEntries[K cmp.Ordered, V, U any](m map[K]V, fn func(V, K) U) []U {
	out := make([]U, 0, len(m))
	for _, k := range sortedKeys(m) {
		out = append(out, fn(m[k], k))
	}
	return out
}

// FilterEntries returns, in key order, the values for which fn returns true.
func FilterEntries[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) []V {
	out := make([]V, 0, len(m))
	for _, k := range sortedKeys(m) {
		if fn(m[k], k) {
			out = append(out, m[k])
		}
	}
	return out
}

// RejectEntries returns, in key order, the values for which fn returns false.
func RejectEntries[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) []V {
	return FilterEntries(m, func(v V, k K) bool { return !fn(v, k) })
}

// ReduceEntries folds the entries of m, in key order, into a single value.
func ReduceEntries[K cmp.Ordered, V, U any](m map[K]V, fn func(U, V, K) U, initial U) U {
	result := initial
	for _, k := range sortedKeys(m) {
		result = fn(result, m[k], k)
	}
	return result
}

// EveryEntry reports whether fn returns true for every entry.
// It is true for an empty map.
func EveryEntry[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) bool {
	for _, k := range sortedKeys(m) {
		if !fn(m[k], k) {
			return false
		}
	}
	return true
}

// SomeEntry reports whether fn returns true for at least one entry.
func SomeEntry[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) bool {
	for _, k := range sortedKeys(m) {
		if fn(m[k], k) {
			return true
		}
	}
	return false
}

// FindEntry returns the first entry, in key order, satisfying fn.
func FindEntry[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) (V, K, bool) {
	for _, k := range sortedKeys(m) {
		if fn(m[k], k) {
			return m[k], k, true
		}
	}
	var (
		zeroV V
		zeroK K
	)
	return zeroV, zeroK, false
}

// ForEachEntry calls fn(value, key) in key order until fn returns false.
func ForEachEntry[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) {
	for _, k := range sortedKeys(m) {
		if !fn(m[k], k) {
			return
		}
	}
}

// GroupByEntries groups the values of m by the key returned by fn.
func GroupByEntries[K cmp.Ordered, V any, G comparable](m map[K]V, fn func(V, K) G) map[G][]V {
	groups := make(map[G][]V)
	for _, k := range sortedKeys(m) {
		g := fn(m[k], k)
		groups[g] = append(groups[g], m[k])
	}
	return groups
}

// CountByEntries counts the entries of m per key returned by fn.
func CountByEntries[K cmp.Ordered, V any, G comparable](m map[K]V, fn func(V, K) G) map[G]int {
	counts := make(map[G]int)
	for _, k := range sortedKeys(m) {
		counts[fn(m[k], k)]++
	}
	return counts
}

// PartitionEntries splits the values of m, in key order, into those
// satisfying fn and those that do not.
func PartitionEntries[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) (pass, fail []V) {
	pass, fail = make([]V, 0), make([]V, 0)
	for _, k := range sortedKeys(m) {
		if fn(m[k], k) {
			pass = append(pass, m[k])
		} else {
			fail = append(fail, m[k])
		}
	}
	return pass, fail
}

// IncludesValue reports whether value is one of the values of m.
func IncludesValue[K comparable, V comparable](m map[K]V, value V) bool {
	for _, v := range m {
		if v == value {
			return true
		}
	}
	return false
}

// Size returns the number of entries in m.
func Size[K comparable, V any](m map[K]V) int { return len(m) }
