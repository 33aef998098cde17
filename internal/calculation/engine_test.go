package calculation

import (
	"context"
	"math"
	"testing"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineInput() *domain.SimulationInput {
	return &domain.SimulationInput{
		CurrentAge:          30,
		RetirementAge:       65,
		SafeWithdrawalRate:  decimal.NewFromFloat(0.04),
		AnnualExpenses:      decimal.NewFromInt(24000),
		InvestedAmount:      decimal.NewFromInt(50000),
		NominalReturn:       decimal.NewFromFloat(0.05),
		Inflation:           decimal.NewFromFloat(0.02),
		PortfolioValue:      decimal.NewFromInt(50000),
		MonthlyContribution: decimal.NewFromInt(1000),
	}
}

func TestRunSimulationBaseline(t *testing.T) {
	engine := NewEngine()
	result, err := engine.RunSimulation(context.Background(), baselineInput())
	require.NoError(t, err)

	assert.True(t, result.FIRETarget.Equal(decimal.NewFromInt(600000)), "fire = %s", result.FIRETarget)

	wantCoast := 600000 / math.Pow(1.03, 35)
	assert.InDelta(t, wantCoast, result.CoastFIRETarget.InexactFloat64(), 0.01)

	assert.Len(t, result.Trajectory, 36)
	assert.True(t, result.ReachesFIRE, "50k invested plus 1000/mo at 3% real for 35y clears 600k")
	require.NotNil(t, result.CoastReachedAge)
	assert.GreaterOrEqual(t, *result.CoastReachedAge, 30)
	assert.Empty(t, result.Hints)
}

func TestRunSimulationShortfallHints(t *testing.T) {
	input := baselineInput()
	input.RetirementAge = 38
	input.MonthlyContribution = decimal.NewFromInt(100)
	input.NominalReturn = decimal.NewFromFloat(0.04)

	engine := NewEngine()
	result, err := engine.RunSimulation(context.Background(), input)
	require.NoError(t, err)

	require.False(t, result.ReachesFIRE)
	assert.Contains(t, result.Hints, "increase the monthly contribution")
	assert.Contains(t, result.Hints, "consider delaying the retirement age")
	assert.Contains(t, result.Hints, "revisit the expected rate of return (it is conservative)")
}

func TestRunSimulationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.SimulationInput)
	}{
		{"retirement before current age", func(si *domain.SimulationInput) { si.RetirementAge = 25 }},
		{"negative expenses", func(si *domain.SimulationInput) { si.AnnualExpenses = decimal.NewFromInt(-1) }},
		{"zero swr", func(si *domain.SimulationInput) { si.SafeWithdrawalRate = decimal.Zero }},
		{"negative contribution", func(si *domain.SimulationInput) { si.MonthlyContribution = decimal.NewFromInt(-5) }},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baselineInput()
			tt.mutate(input)
			_, err := engine.RunSimulation(context.Background(), input)
			assert.Error(t, err)
		})
	}
}

func TestRunSimulationZeroHorizon(t *testing.T) {
	input := baselineInput()
	input.RetirementAge = input.CurrentAge

	engine := NewEngine()
	result, err := engine.RunSimulation(context.Background(), input)
	require.NoError(t, err)

	// One projected point, and coast collapses to the FIRE target.
	assert.Len(t, result.Trajectory, 1)
	assert.True(t, result.CoastFIRETarget.Equal(result.FIRETarget))
}

func TestRunSimulationCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine()
	_, err := engine.RunSimulation(ctx, baselineInput())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSetLoggerNilFallsBackToNop(t *testing.T) {
	engine := NewEngine()
	engine.SetLogger(nil)
	require.NotNil(t, engine.Logger)

	_, err := engine.RunSimulation(context.Background(), baselineInput())
	assert.NoError(t, err)
}
