package mathx

import (
	"cmp"
	"math"
	"slices"
)

// Number is satisfied by every integer and floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregates
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of xs, 0 for an empty slice.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// SumBy sums fn(item) over items.
func SumBy[T any, N Number](items []T, fn func(T) N) N {
	var total N
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Mean returns the arithmetic mean of xs, NaN for an empty slice.
func Mean[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return toF(xs) / float64(len(xs))
}

// MeanBy returns the mean of fn(item) over items, NaN for an empty slice.
func MeanBy[T any, N Number](items []T, fn func(T) N) float64 {
	if len(items) == 0 {
		return math.NaN()
	}
	var total float64
	for _, item := range items {
		total += float64(fn(item))
	}
	return total / float64(len(items))
}

func toF[T Number](xs []T) float64 {
	var total float64
	for _, x := range xs {
		total += float64(x)
	}
	return total
}

// Median returns the middle value of xs, or the mean of the two middle
// values for even lengths. NaN for an empty slice.
func Median[T Number](xs []T) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

// Variance returns the population variance of xs, NaN for an empty slice.
func Variance[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return squaredDeviations(xs) / float64(len(xs))
}

// Std returns the population standard deviation of xs.
func Std[T Number](xs []T) float64 {
	return math.Sqrt(Variance(xs))
}

// SampleStd returns the sample standard deviation of xs (Bessel's
// correction), NaN for fewer than two values.
func SampleStd[T Number](xs []T) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return math.Sqrt(squaredDeviations(xs) / float64(len(xs)-1))
}

func squaredDeviations[T Number](xs []T) float64 {
	mean := Mean(xs)
	var sum float64
	for _, x := range xs {
		d := float64(x) - mean
		sum += d * d
	}
	return sum
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the smallest element of xs. ok is false for an empty slice.
func Min[T cmp.Ordered](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return slices.Min(xs), true
}

// Max returns the largest element of xs. ok is false for an empty slice.
func Max[T cmp.Ordered](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return slices.Max(xs), true
}

// MinBy returns the first item with the smallest key.
func MinBy[T any, K cmp.Ordered](items []T, key func(T) K) (T, bool) {
	return extremeBy(items, key, -1)
}

// MaxBy returns the first item with the largest key.
func MaxBy[T any, K cmp.Ordered](items []T, key func(T) K) (T, bool) {
	return extremeBy(items, key, 1)
}

func extremeBy[T any, K cmp.Ordered](items []T, key func(T) K, sign int) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	best, bestKey := items[0], key(items[0])
	for _, item := range items[1:] {
		if k := key(item); cmp.Compare(k, bestKey) == sign {
			best, bestKey = item, k
		}
	}
	return best, true
}
