package calculation

import (
	"math"
	"testing"
	"time"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *domain.SimulationRecord {
	return &domain.SimulationRecord{
		Date:             "2025-08-30",
		CurrentAge:       30,
		RetirementAge:    65,
		SWRPercent:       decimal.NewFromInt(4),
		AnnualExpenses:   decimal.NewFromInt(24000),
		ReturnPercent:    decimal.NewFromInt(5),
		InflationPercent: decimal.NewFromInt(2),
		PortfolioValue:   decimal.NewFromInt(20000),
	}
}

func contributionOn(date string) domain.ContributionRecord {
	return domain.ContributionRecord{
		ID:             "01J0000000000000000000TEST",
		Date:           date,
		Asset:          "S&P 500",
		Quantity:       decimal.NewFromInt(1),
		AmountInvested: decimal.NewFromInt(500),
		PortfolioValue: decimal.NewFromInt(20000),
	}
}

func TestEvaluateProgressRecomputesTarget(t *testing.T) {
	record := testRecord()
	// A stale stored target must not leak into the evaluation.
	record.FIRETarget = decimal.NewFromInt(1)

	today := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	summary, err := EvaluateProgress(record, nil, today)
	require.NoError(t, err)

	assert.True(t, summary.FIRETarget.Equal(decimal.NewFromInt(600000)), "fire target = %s", summary.FIRETarget)
	assert.Equal(t, 35, summary.YearsRemaining)
}

func TestEvaluateProgressRequiredMonthly(t *testing.T) {
	today := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	summary, err := EvaluateProgress(testRecord(), nil, today)
	require.NoError(t, err)

	// pmt = fire * r / ((1+r)^n - 1) with r = 0.03/12 and n = 420.
	r := 0.03 / 12
	want := 600000 * r / (math.Pow(1+r, 420) - 1)
	assert.InDelta(t, want, summary.RequiredMonthly.InexactFloat64(), 0.01)
}

func TestEvaluateProgressZeroRateStraightLine(t *testing.T) {
	record := testRecord()
	record.ReturnPercent = decimal.NewFromInt(2) // real rate 0

	today := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	summary, err := EvaluateProgress(record, []domain.ContributionRecord{contributionOn("2023-08-15")}, today)
	require.NoError(t, err)

	// Straight-line payment and linear expected value.
	want := 600000.0 / 420
	assert.InDelta(t, want, summary.RequiredMonthly.InexactFloat64(), 0.01)
	assert.Equal(t, 24, summary.MonthsElapsed)
	assert.InDelta(t, want*24, summary.ExpectedValueToday.InexactFloat64(), 0.01)
}

func TestEvaluateProgressEmptyLedger(t *testing.T) {
	today := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	summary, err := EvaluateProgress(testRecord(), nil, today)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.MonthsElapsed)
	assert.True(t, summary.ExpectedValueToday.IsZero())
	assert.Equal(t, domain.StatusInsufficientHistory, summary.Status)
}

func TestEvaluateProgressUnparseableDatesIgnored(t *testing.T) {
	today := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	ledger := []domain.ContributionRecord{
		contributionOn("not-a-date"),
		contributionOn("2024-08-10"),
		contributionOn("2025-01-05"),
	}
	summary, err := EvaluateProgress(testRecord(), ledger, today)
	require.NoError(t, err)
	assert.Equal(t, 12, summary.MonthsElapsed)
}

func TestEvaluateProgressClassification(t *testing.T) {
	expected := decimal.NewFromInt(100000)
	tests := []struct {
		name   string
		actual int64
		want   domain.ProgressStatus
	}{
		{"more than 5% below", 94999, domain.StatusBehind},
		{"within the band below", 95001, domain.StatusOnTrack},
		{"exactly 5% below", 95000, domain.StatusOnTrack},
		{"exactly 5% above", 105000, domain.StatusOnTrack},
		{"more than 5% above", 105001, domain.StatusAhead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := decimal.NewFromInt(tt.actual).Sub(expected)
			assert.Equal(t, tt.want, classifyDrift(diff, expected))
		})
	}
}

func TestEvaluateProgressNonPositiveSWR(t *testing.T) {
	record := testRecord()
	record.SWRPercent = decimal.Zero

	_, err := EvaluateProgress(record, nil, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroWithdrawalRate)
}

func TestEvaluateProgressNilRecord(t *testing.T) {
	_, err := EvaluateProgress(nil, nil, time.Now())
	require.Error(t, err)
}

func TestEvaluateProgressRetirementAgeInPast(t *testing.T) {
	record := testRecord()
	record.CurrentAge = 70
	record.RetirementAge = 65

	summary, err := EvaluateProgress(record, nil, time.Now())
	require.NoError(t, err)
	// Clamped horizon: no months remain, the payment degrades to the target.
	assert.Equal(t, 0, summary.YearsRemaining)
	assert.True(t, summary.RequiredMonthly.Equal(summary.FIRETarget))
}

func TestEvaluateProgressPercentOfTarget(t *testing.T) {
	record := testRecord()
	record.PortfolioValue = decimal.NewFromInt(150000)

	summary, err := EvaluateProgress(record, nil, time.Now())
	require.NoError(t, err)
	assert.True(t, summary.PercentOfTarget.Equal(decimal.NewFromInt(25)), "percent = %s", summary.PercentOfTarget)
}
