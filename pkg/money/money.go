// Package money does minor-unit arithmetic.
//
// Amounts are int64 minor units (cents). Quantities are float64 so fractional
// units such as fluid ounces work. Products are formed in decimal and rounded
// once, half-up, so 2.5 becomes 3 and -2.5 becomes -2.
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange is returned when a result does not fit in int64 minor units.
var ErrOutOfRange = errors.New("amount out of range")

var (
	half     = decimal.New(5, -1)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// Round rounds half toward positive infinity.
func Round(d decimal.Decimal) (int64, error) {
	r := d.Add(half).Floor()
	if r.GreaterThan(maxMinor) || r.LessThan(minMinor) {
		return 0, ErrOutOfRange
	}
	return r.IntPart(), nil
}

// FromFloat rounds a float amount (a JSON number or a SQL SUM over REAL
// columns) to minor units.
func FromFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrOutOfRange
	}
	return Round(decimal.NewFromFloat(f))
}

// LineTotal is round(qty × unit).
func LineTotal(qty float64, unit int64) (int64, error) {
	return Round(decimal.NewFromFloat(qty).Mul(decimal.NewFromInt(unit)))
}

// MovingAverage is the weighted average unit cost after receiving qty at unit
// on top of oldQty at oldAvg. It is 0 when the resulting quantity is exactly 0.
func MovingAverage(oldQty float64, oldAvg int64, qty float64, unit int64) (int64, error) {
	oq := decimal.NewFromFloat(oldQty)
	q := decimal.NewFromFloat(qty)

	newQty := oq.Add(q)
	if newQty.IsZero() {
		return 0, nil
	}

	total := oq.Mul(decimal.NewFromInt(oldAvg)).Add(q.Mul(decimal.NewFromInt(unit)))
	return Round(total.Div(newQty))
}

// AddQty sums quantities in decimal so repeated fractional movements do not
// drift from their total.
func AddQty(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Float64()
	return f
}

// Margin is profit / revenue, or 0 when revenue is 0.
func Margin(profit, revenue int64) float64 {
	if revenue == 0 {
		return 0
	}
	return float64(profit) / float64(revenue)
}
