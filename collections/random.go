package collections

import "math/rand/v2"

// Shuffle returns a randomly ordered copy of items using the Fisher-Yates
// algorithm.
func Shuffle[T any](items []T) []T {
	return shuffle(items, rand.IntN)
}

// ShuffleWith is [Shuffle] drawing from r, for reproducible results.
func ShuffleWith[T any](items []T, r *rand.Rand) []T {
	return shuffle(items, r.IntN)
}

func shuffle[T any](items []T, intn func(int) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns one random element.
// Returns the zero value and false when items is empty.
func Sample[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rand.IntN(len(items))], true
}

// SampleSize returns n distinct random elements (without replacement).
// n is clamped to [0, len(items)].
func SampleSize[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	return Shuffle(items)[:n]
}
