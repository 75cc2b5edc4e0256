package catalog

import "github.com/shopspring/decimal"

// EURConversionRate is the fixed approximate USD→EUR factor applied when
// deriving the eur price entry. It is not a live exchange rate.
const EURConversionRate = 0.85

var hundred = decimal.NewFromInt(100)

// Cents converts a source price to integer minor units, rounding half away
// from zero. The arithmetic runs in decimal space so inputs like 9.995
// round to 1000 rather than picking up binary-float noise.
func Cents(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(hundred).Round(0).IntPart()
}

// CentsAt converts a source price to integer minor units after applying a
// currency conversion rate.
func CentsAt(price, rate float64) int64 {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromFloat(rate)).
		Mul(hundred).
		Round(0).
		IntPart()
}
