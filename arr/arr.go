package arr

import (
	"cmp"
	"math"
	"reflect"
	"sort"
)

// number is the set of types accepted by [Range].
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element.
// Returns the zero value and false when items is empty.
func Head[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Initial returns a copy of all elements but the last.
func Initial[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return clone(items[:len(items)-1])
}

// Tail returns a copy of all elements but the first.
func Tail[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return clone(items[1:])
}

// Nth returns the element at index n. A negative n counts from the end, so
// Nth(items, -1) is the last element.
func Nth[T any](items []T, n int) (T, bool) {
	var zero T
	if n < 0 {
		n += len(items)
	}
	if n < 0 || n >= len(items) {
		return zero, false
	}
	return items[n], true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
func LastIndexOf[T comparable](items []T, value T) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == value {
			return i
		}
	}
	return -1
}

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// FindLastIndex returns the index of the last element satisfying fn, or -1.
func FindLastIndex[T any](items []T, fn func(T) bool) int {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// Returns an empty [][]T when size <= 0 or items is empty.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunks = append(chunks, clone(items[i:end]))
	}
	return chunks
}

// Compact returns items with every zero value removed.
func Compact[T comparable](items []T) []T {
	var zero T
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}

// Concat joins any number of slices into a new slice.
func Concat[T any](slices ...[]T) []T {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	out := make([]T, 0, total)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Flatten removes one level of nesting.
func Flatten[T any](items [][]T) []T {
	return Concat(items...)
}

// FlattenDeep recursively flattens every slice or array found in items.
// A value that is not a slice or array is returned as a one-element slice.
//
//	FlattenDeep([]any{1, []any{2, []int{3, 4}}}) // → [1 2 3 4]
func FlattenDeep(items any) []any {
	return FlattenDepth(items, math.MaxInt)
}

// FlattenDepth flattens items up to depth levels of nesting. Depth 0 returns
// the top-level elements unchanged.
func FlattenDepth(items any, depth int) []any {
	out := make([]any, 0)
	v := reflect.ValueOf(items)
	if !isList(v) {
		if items == nil {
			return out
		}
		return append(out, items)
	}
	var walk func(v reflect.Value, depth int)
	walk = func(v reflect.Value, depth int) {
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			for elem.Kind() == reflect.Interface && !elem.IsNil() {
				elem = elem.Elem()
			}
			if depth > 0 && isList(elem) {
				walk(elem, depth-1)
				continue
			}
			out = append(out, elem.Interface())
		}
	}
	walk(v, depth)
	return out
}

func isList(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Fill returns a copy of items with positions [start, end) set to value.
// Negative indices count from the end; out-of-range indices are clamped.
func Fill[T any](items []T, value T, start, end int) []T {
	out := clone(items)
	start, end = clampIndex(start, len(out)), clampIndex(end, len(out))
	for i := start; i < end; i++ {
		out[i] = value
	}
	return out
}

// Range returns numbers progressing from start up to, but not including,
// end. A zero step is replaced by 1 or -1 depending on direction. A step
// pointing away from end yields an empty slice.
//
//	Range(0, 4, 1)   // → [0 1 2 3]
//	Range(0, 20, 5)  // → [0 5 10 15]
//	Range(0, -4, 0)  // → [0 -1 -2 -3]
func Range[T number](start, end, step T) []T {
	if step == 0 {
		if end < start {
			step--
		} else {
			step++
		}
	}
	n := int(math.Ceil((float64(end) - float64(start)) / float64(step)))
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = start + T(i)*step
	}
	return out
}

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// FromPairs builds a map from key/value pairs. Later pairs win.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[p.First] = p.Second
	}
	return out
}

// ToPairs returns the entries of m as pairs ordered by key.
func ToPairs[K cmp.Ordered, V any](m map[K]V) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Pair[K, V]{First: k, Second: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].First < out[j].First })
	return out
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Unzip is the inverse of [Zip].
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i], bs[i] = p.First, p.Second
	}
	return as, bs
}

// ZipMap creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if the lengths differ.
func ZipMap[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most the first n elements.
func Take[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	return clone(items[:n])
}

// TakeRight returns at most the last n elements.
func TakeRight[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	return clone(items[len(items)-n:])
}

// TakeWhile returns elements from the start while fn returns true.
func TakeWhile[T any](items []T, fn func(T) bool) []T {
	i := 0
	for i < len(items) && fn(items[i]) {
		i++
	}
	return clone(items[:i])
}

// TakeRightWhile returns elements from the end while fn returns true.
func TakeRightWhile[T any](items []T, fn func(T) bool) []T {
	i := len(items)
	for i > 0 && fn(items[i-1]) {
		i--
	}
	return clone(items[i:])
}

// Drop returns items without the first n elements.
func Drop[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	return clone(items[n:])
}

// DropRight returns items without the last n elements.
func DropRight[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	return clone(items[:len(items)-n])
}

// DropWhile skips elements from the start while fn returns true.
func DropWhile[T any](items []T, fn func(T) bool) []T {
	i := 0
	for i < len(items) && fn(items[i]) {
		i++
	}
	return clone(items[i:])
}

// DropRightWhile removes elements from the end while fn returns true.
func DropRightWhile[T any](items []T, fn func(T) bool) []T {
	i := len(items)
	for i > 0 && fn(items[i-1]) {
		i--
	}
	return clone(items[:i])
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}
