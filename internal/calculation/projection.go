package calculation

import (
	"github.com/shopspring/decimal"
)

// ProjectAnnual produces the year-indexed wealth trajectory for a starting
// balance, a level monthly contribution and a real rate of return.
//
// Each elapsed year applies one full compounding pass to the running total
// before that year's twelve contributions are added, and a contribution made
// in month m earns a fractional-year credit of (1+rate)^((11-m)/12) for the
// remainder of the year. The result has years+1 points; point 0 already
// reflects one compounding pass plus twelve contributions, it is not the raw
// initial value. A negative horizon yields an empty trajectory.
func ProjectAnnual(initial, monthlyContribution, realRate decimal.Decimal, years int) []decimal.Decimal {
	if years < 0 {
		return nil
	}

	yearFactor := growthFactor(realRate, 1)
	trajectory := make([]decimal.Decimal, 0, years+1)
	total := initial

	for year := 0; year <= years; year++ {
		total = total.Mul(yearFactor)
		for month := 0; month < 12; month++ {
			credit := growthFactor(realRate, float64(11-month)/12)
			total = total.Add(monthlyContribution.Mul(credit))
		}
		trajectory = append(trajectory, total)
	}

	return trajectory
}

// ReachesTarget reports whether any trajectory point is at or above target.
// An empty trajectory never reaches anything.
func ReachesTarget(trajectory []decimal.Decimal, target decimal.Decimal) bool {
	for _, v := range trajectory {
		if v.GreaterThanOrEqual(target) {
			return true
		}
	}
	return false
}

// FirstCrossing returns the index of the first trajectory point at or above
// target, and false when the trajectory never crosses it.
func FirstCrossing(trajectory []decimal.Decimal, target decimal.Decimal) (int, bool) {
	for i, v := range trajectory {
		if v.GreaterThanOrEqual(target) {
			return i, true
		}
	}
	return 0, false
}

// MonthlyProjection is the outcome of the monthly-stepping simulation variant.
// The trajectories are truncated at the month the target is first reached;
// Reached distinguishes "never reached within the horizon" from "reached
// immediately" (no ambiguous zero sentinel).
type MonthlyProjection struct {
	FIREValues     []decimal.Decimal
	CoastValues    []decimal.Decimal
	MonthsToTarget int
	Reached        bool
}

// YearsToTarget converts the crossing month into fractional years. The second
// return value is false when the target was never reached.
func (mp *MonthlyProjection) YearsToTarget() (float64, bool) {
	if !mp.Reached {
		return 0, false
	}
	return float64(mp.MonthsToTarget) / 12, true
}

// ProjectMonthly steps month by month toward a flat monetary target.
//
// The monthly rate is the true geometric rate (1+annualRate)^(1/12) - 1, not
// annualRate/12. Each month the FIRE series compounds and receives the
// contribution while the coast series only compounds. The loop exits early the
// first month the FIRE series reaches the target.
func ProjectMonthly(initial, monthlyContribution, annualRate, target decimal.Decimal, monthsHorizon int) MonthlyProjection {
	monthFactor := growthFactor(annualRate, 1.0/12.0)

	proj := MonthlyProjection{}
	fireValue := initial
	coastValue := initial

	for month := 0; month < monthsHorizon; month++ {
		fireValue = fireValue.Mul(monthFactor).Add(monthlyContribution)
		coastValue = coastValue.Mul(monthFactor)
		proj.FIREValues = append(proj.FIREValues, fireValue)
		proj.CoastValues = append(proj.CoastValues, coastValue)

		if fireValue.GreaterThanOrEqual(target) {
			proj.Reached = true
			proj.MonthsToTarget = month + 1
			break
		}
	}

	return proj
}
