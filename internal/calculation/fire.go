package calculation

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrZeroWithdrawalRate is returned when a FIRE target is requested with a
// zero safe withdrawal rate. The engine fails explicitly instead of clamping
// or producing +Inf.
var ErrZeroWithdrawalRate = errors.New("safe withdrawal rate must be greater than zero")

// ErrDegenerateRate is returned when a growth rate makes a compounding factor
// collapse to zero (real rate of -100% over a positive horizon).
var ErrDegenerateRate = errors.New("growth rate produces a degenerate compounding factor")

// FIRETarget computes the capital required to sustain annualExpenses under the
// safe withdrawal rate: expenses / swr.
func FIRETarget(annualExpenses, swr decimal.Decimal) (decimal.Decimal, error) {
	if swr.IsZero() {
		return decimal.Zero, ErrZeroWithdrawalRate
	}
	return annualExpenses.Div(swr), nil
}

// CoastFIRETarget discounts the FIRE target back to the present over the years
// remaining until retirement: fire / (1 + realRate)^years. A zero horizon
// collapses to the FIRE target; a negative horizon is mathematically valid
// (the discount factor becomes > 1) and is evaluated as-is.
func CoastFIRETarget(annualExpenses, swr, realRate decimal.Decimal, yearsRemaining int) (decimal.Decimal, error) {
	fire, err := FIRETarget(annualExpenses, swr)
	if err != nil {
		return decimal.Zero, err
	}
	discount := growthFactor(realRate, float64(yearsRemaining))
	if discount.IsZero() {
		return decimal.Zero, ErrDegenerateRate
	}
	return fire.Div(discount), nil
}

// growthFactor computes (1 + rate)^exponent. Fractional exponents go through
// float64 math; all surrounding accumulation arithmetic stays in decimal.
func growthFactor(rate decimal.Decimal, exponent float64) decimal.Decimal {
	base := decimal.NewFromInt(1).Add(rate).InexactFloat64()
	v := math.Pow(base, exponent)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// Rates at or below -100% have no meaningful compounding factor.
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
