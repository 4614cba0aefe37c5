package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// amount fails the test on a rounding error.
func amount(t *testing.T) func(int64, error) int64 {
	return func(v int64, err error) int64 {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

func TestRound_HalfUp(t *testing.T) {
	cases := map[string]int64{
		"2.5":    3,
		"2.4999": 2,
		"-2.5":   -2,
		"-2.51":  -3,
		"0":      0,
		"1000.5": 1001,
	}
	for in, want := range cases {
		got, err := Round(decimal.RequireFromString(in))
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestRound_OutOfRange(t *testing.T) {
	_, err := Round(decimal.NewFromInt(math.MaxInt64).Add(decimal.NewFromInt(1)))
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Round(decimal.NewFromInt(math.MinInt64).Sub(decimal.NewFromInt(1)))
	assert.ErrorIs(t, err, ErrOutOfRange)

	got, err := Round(decimal.NewFromInt(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)
}

func TestLineTotal(t *testing.T) {
	must := amount(t)
	assert.Equal(t, int64(1000), must(LineTotal(5, 200)))
	assert.Equal(t, int64(30), must(LineTotal(0.1, 300)))
	assert.Equal(t, int64(1250), must(LineTotal(2.5, 500)))
	assert.Equal(t, int64(1), must(LineTotal(0.5, 1)))

	_, err := LineTotal(1e17, 1000)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMovingAverage(t *testing.T) {
	must := amount(t)
	// fresh product
	assert.Equal(t, int64(500), must(MovingAverage(0, 0, 10, 500)))
	// 10 @ 500 then 10 @ 700
	assert.Equal(t, int64(600), must(MovingAverage(10, 500, 10, 700)))
	// 3 @ 100 then 1 @ 101 = 100.25
	assert.Equal(t, int64(100), must(MovingAverage(3, 100, 1, 101)))
	// 1 @ 100 then 1 @ 101 = 100.5
	assert.Equal(t, int64(101), must(MovingAverage(1, 100, 1, 101)))
	// negative on-hand brought back to exactly zero
	assert.Equal(t, int64(0), must(MovingAverage(-4, 250, 4, 300)))
}

func TestMargin(t *testing.T) {
	assert.Equal(t, 0.0, Margin(0, 0))
	assert.Equal(t, 0.0, Margin(-50, 0))
	assert.InDelta(t, 0.4, Margin(400, 1000), 1e-9)
}

func TestFromFloat(t *testing.T) {
	must := amount(t)
	assert.Equal(t, int64(1235), must(FromFloat(1234.5)))
	assert.Equal(t, int64(1251), must(FromFloat(1250.5)))
	assert.Equal(t, int64(0), must(FromFloat(0)))

	for _, f := range []float64{1e30, -1e30, math.Inf(1), math.NaN()} {
		_, err := FromFloat(f)
		assert.ErrorIs(t, err, ErrOutOfRange, f)
	}
}
