package mathx

import (
	"cmp"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Clamp limits v to the inclusive range [lo, hi]. Swapped bounds are
// reordered.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}

// InRange reports whether start <= v < end. Swapped bounds are reordered.
func InRange[T Number](v, start, end T) bool {
	if start > end {
		start, end = end, start
	}
	return v >= start && v < end
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ─────────────────────────────────────────────────────────────────────────────
// Rounding
// ─────────────────────────────────────────────────────────────────────────────

// Round rounds x to precision decimal places, half away from zero.
// Negative precision rounds to tens, hundreds and so on.
//
//	Round(1.005, 2)  // → 1.01
//	Round(4060, -2)  // → 4100
func Round(x float64, precision int) float64 { return roundWith(math.Round, x, precision) }

// Floor rounds x down to precision decimal places.
func Floor(x float64, precision int) float64 { return roundWith(math.Floor, x, precision) }

// Ceil rounds x up to precision decimal places.
func Ceil(x float64, precision int) float64 { return roundWith(math.Ceil, x, precision) }

func roundWith(fn func(float64) float64, x float64, precision int) float64 {
	if precision == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return fn(x)
	}
	shifted := shift(x, precision)
	if math.IsInf(shifted, 0) {
		return x
	}
	return shift(fn(shifted), -precision)
}

// shift multiplies x by 10^n through its decimal representation so that
// values such as 1.005 are not skewed by binary rounding.
func shift(x float64, n int) float64 {
	mant, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return x * math.Pow10(n)
	}
	f, err := strconv.ParseFloat(mant+"e"+strconv.Itoa(e+n), 64)
	if err != nil {
		return x * math.Pow10(n)
	}
	return f
}

// ─────────────────────────────────────────────────────────────────────────────
// Random
// ─────────────────────────────────────────────────────────────────────────────

// Random returns a pseudo-random float in [lo, hi).
func Random(lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + rand.Float64()*(hi-lo)
}

// RandomInt returns a pseudo-random integer in [lo, hi]. Any pair of ints
// is accepted, including the full int range.
func RandomInt(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int(rand.Uint64())
	}
	return lo + int(rand.Uint64N(span+1))
}
