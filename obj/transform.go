package obj

import (
	"cmp"
	"slices"

	"github.com/hasbyte1/go-utilkit/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Selecting keys
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a new document containing only the given paths.
//
//	Pick(m, "id", "user.name") // → {"id": ..., "user": {"name": ...}}
func Pick(m map[string]any, paths ...string) map[string]any {
	out := make(map[string]any, len(paths))
	for _, p := range paths {
		if v, ok := Lookup(m, p); ok {
			_ = Set(out, p, CloneDeep(v))
		}
	}
	return out
}

// PickBy returns the entries of m for which fn returns true.
func PickBy[K comparable, V any](m map[K]V, fn func(V, K) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if fn(v, k) {
			out[k] = v
		}
	}
	return out
}

// Omit returns a deep copy of m without the given paths.
func Omit(m map[string]any, paths ...string) map[string]any {
	out := CloneDeep(m)
	if out == nil {
		out = make(map[string]any)
	}
	for _, p := range paths {
		Unset(out, p)
	}
	return out
}

// OmitBy returns the entries of m for which fn returns false.
func OmitBy[K comparable, V any](m map[K]V, fn func(V, K) bool) map[K]V {
	return PickBy(m, func(v V, k K) bool { return !fn(v, k) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys, values and entries
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Values returns the values of m ordered by key.
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, k := range Keys(m) {
		out = append(out, m[k])
	}
	return out
}

// Entries returns the key/value pairs of m ordered by key.
func Entries[K cmp.Ordered, V any](m map[K]V) []arr.Pair[K, V] {
	return arr.ToPairs(m)
}

// FromEntries builds a map from key/value pairs. Later pairs win.
func FromEntries[K comparable, V any](pairs []arr.Pair[K, V]) map[K]V {
	return arr.FromPairs(pairs)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transforming
// ─────────────────────────────────────────────────────────────────────────────

// MapKeys returns a map with the same values keyed by fn(value, key).
// Colliding keys keep the value of the greatest original key.
func MapKeys[K cmp.Ordered, V any, K2 comparable](m map[K]V, fn func(V, K) K2) map[K2]V {
	out := make(map[K2]V, len(m))
	for _, k := range Keys(m) {
		out[fn(m[k], k)] = m[k]
	}
	return out
}

// MapValues returns a map with the same keys and values fn(value, key).
func MapValues[K comparable, V, U any](m map[K]V, fn func(V, K) U) map[K]U {
	out := make(map[K]U, len(m))
	for k, v := range m {
		out[k] = fn(v, k)
	}
	return out
}

// Invert swaps keys and values. When values repeat, the greatest key wins.
func Invert[K cmp.Ordered, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for _, k := range Keys(m) {
		out[m[k]] = k
	}
	return out
}

// InvertBy groups the keys of m, in ascending order, by fn(value).
//
//	InvertBy(map[string]int{"a": 1, "b": 2, "c": 1}, strconv.Itoa)
//	// → {"1": [a c], "2": [b]}
func InvertBy[K cmp.Ordered, V any, G comparable](m map[K]V, fn func(V) G) map[G][]K {
	out := make(map[G][]K)
	for _, k := range Keys(m) {
		g := fn(m[k])
		out[g] = append(out[g], k)
	}
	return out
}
