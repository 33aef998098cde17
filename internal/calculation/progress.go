package calculation

import (
	"fmt"
	"time"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/firetrack/fire-tracker/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var (
	twelve         = decimal.NewFromInt(12)
	oneHundred     = decimal.NewFromInt(100)
	driftTolerance = decimal.NewFromFloat(0.05)
)

// EvaluateProgress compares the portfolio value stored in the latest
// simulation record against the value a theoretically required savings plan
// would have accumulated by today.
//
// The FIRE target is recomputed from the record's stored SWR and expenses
// rather than reused from the stored target field, so a stale target cannot
// skew the evaluation. Elapsed time is anchored on the earliest date in the
// contribution ledger. Any failure is returned as a plain error for the
// caller to render; evaluation never mutates state.
func EvaluateProgress(record *domain.SimulationRecord, ledger []domain.ContributionRecord, today time.Time) (*domain.ProgressSummary, error) {
	if record == nil {
		return nil, fmt.Errorf("no simulation on record")
	}

	swr := record.SWR()
	if swr.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("recorded simulation has a non-positive withdrawal rate: %w", ErrZeroWithdrawalRate)
	}
	fire := record.AnnualExpenses.Div(swr)

	yearsRemaining := record.RetirementAge - record.CurrentAge
	if yearsRemaining < 0 {
		yearsRemaining = 0
	}
	monthsRemaining := yearsRemaining * 12
	monthlyRate := record.RealRate().Div(twelve)

	pmt := requiredMonthlyPayment(fire, monthlyRate, monthsRemaining)

	monthsElapsed := 0
	if earliest, ok := domain.EarliestContributionDate(ledger); ok {
		monthsElapsed = dateutil.WholeMonthsBetween(earliest, today)
	}

	expected := annuityFutureValue(pmt, monthlyRate, monthsElapsed)

	actual := record.PortfolioValue
	diff := actual.Sub(expected)

	percent := decimal.Zero
	if fire.IsPositive() {
		percent = actual.Div(fire).Mul(oneHundred)
	}

	return &domain.ProgressSummary{
		FIRETarget:         fire,
		RetirementAge:      record.RetirementAge,
		YearsRemaining:     yearsRemaining,
		RequiredMonthly:    pmt,
		MonthsElapsed:      monthsElapsed,
		ExpectedValueToday: expected,
		ActualValue:        actual,
		Difference:         diff,
		PercentOfTarget:    percent,
		Status:             classifyDrift(diff, expected),
	}, nil
}

// requiredMonthlyPayment inverts the future-value-of-annuity formula:
// pmt = target * rate / ((1+rate)^months - 1). When the rate is zero or the
// annuity factor is not positive it degrades to a straight-line division, and
// to the target itself when no months remain.
func requiredMonthlyPayment(target, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if months > 0 && !monthlyRate.IsZero() {
		factor := growthFactor(monthlyRate, float64(months)).Sub(decimal.NewFromInt(1))
		if factor.IsPositive() {
			return target.Mul(monthlyRate).Div(factor)
		}
	}
	if months > 0 {
		return target.Div(decimal.NewFromInt(int64(months)))
	}
	return target
}

// annuityFutureValue accumulates a level payment at monthlyRate over the given
// number of periods.
func annuityFutureValue(pmt, monthlyRate decimal.Decimal, periods int) decimal.Decimal {
	if monthlyRate.IsZero() {
		return pmt.Mul(decimal.NewFromInt(int64(periods)))
	}
	factor := growthFactor(monthlyRate, float64(periods)).Sub(decimal.NewFromInt(1))
	return pmt.Mul(factor.Div(monthlyRate))
}

// classifyDrift applies the 5% band around the expected value. Boundaries at
// exactly ±5% classify as on track; a non-positive expected value means there
// is not enough history to compare.
func classifyDrift(diff, expected decimal.Decimal) domain.ProgressStatus {
	if !expected.IsPositive() {
		return domain.StatusInsufficientHistory
	}
	band := expected.Abs().Mul(driftTolerance)
	switch {
	case diff.LessThan(band.Neg()):
		return domain.StatusBehind
	case diff.GreaterThan(band):
		return domain.StatusAhead
	default:
		return domain.StatusOnTrack
	}
}
