package mathx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-utilkit/mathx"
)

func TestClampAndInRange(t *testing.T) {
	assert.Equal(t, 5, mathx.Clamp(10, -5, 5))
	assert.Equal(t, -5, mathx.Clamp(-10, -5, 5))
	assert.Equal(t, 3, mathx.Clamp(3, 5, -5))
	assert.Equal(t, "b", mathx.Clamp("z", "a", "b"))

	assert.True(t, mathx.InRange(3, 2, 4))
	assert.False(t, mathx.InRange(4, 2, 4))
	assert.True(t, mathx.InRange(-3, -2, -6))
	assert.True(t, mathx.InRange(1.2, 1, 2))
}

func TestRounding(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64, int) float64
		x    float64
		p    int
		want float64
	}{
		{"round", mathx.Round, 4.006, 0, 4},
		{"round precision", mathx.Round, 4.006, 2, 4.01},
		{"round binary edge", mathx.Round, 1.005, 2, 1.01},
		{"round negative precision", mathx.Round, 4060, -2, 4100},
		{"round half away from zero", mathx.Round, -2.5, 0, -3},
		{"floor", mathx.Floor, 0.046, 2, 0.04},
		{"floor negative precision", mathx.Floor, 4060, -2, 4000},
		{"ceil", mathx.Ceil, 6.004, 2, 6.01},
		{"ceil negative precision", mathx.Ceil, 6040, -2, 6100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.x, tt.p))
		})
	}

	assert.True(t, math.IsNaN(mathx.Round(math.NaN(), 2)))
	assert.True(t, math.IsInf(mathx.Round(math.Inf(1), 2), 1))
}

func TestRoundingExtremePrecision(t *testing.T) {
	assert.Equal(t, 1.5, mathx.Round(1.5, 400))
	assert.Equal(t, 1.5, mathx.Floor(1.5, 400))
	assert.Equal(t, -1.5, mathx.Ceil(-1.5, 400))
	assert.Equal(t, 1.5, mathx.Round(1.5, 300))
	assert.Equal(t, 0.0, mathx.Round(1.5, -400))
}

func TestRandom(t *testing.T) {
	for range 200 {
		f := mathx.Random(5, 1)
		assert.True(t, f >= 1 && f < 5, "%v out of range", f)

		n := mathx.RandomInt(-2, 2)
		assert.True(t, n >= -2 && n <= 2, "%d out of range", n)
	}
	assert.Equal(t, 7, mathx.RandomInt(7, 7))
}

func TestRandomIntWideRange(t *testing.T) {
	assert.NotPanics(t, func() {
		for range 100 {
			n := mathx.RandomInt(0, math.MaxInt)
			assert.GreaterOrEqual(t, n, 0)

			m := mathx.RandomInt(math.MinInt, -1)
			assert.Less(t, m, 0)

			mathx.RandomInt(math.MinInt, math.MaxInt)
		}
	})
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, mathx.Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, mathx.Lerp(0, 10, 1))
	assert.Equal(t, -10.0, mathx.Lerp(0, 10, -1))
}
