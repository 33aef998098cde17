package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine orchestrates the FIRE calculations. It is pure: persistence is the
// caller's responsibility and a failed computation never reaches a store.
type Engine struct {
	Logger Logger
}

// NewEngine creates a new simulation engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunSimulation validates the input, computes the FIRE and coast targets and
// the annual wealth trajectory, and derives the milestone flags.
func (e *Engine) RunSimulation(ctx context.Context, input *domain.SimulationInput) (*domain.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation input: %w", err)
	}

	realRate := input.RealRate()
	years := input.YearsToRetirement()

	fire, err := FIRETarget(input.AnnualExpenses, input.SafeWithdrawalRate)
	if err != nil {
		return nil, err
	}
	coast, err := CoastFIRETarget(input.AnnualExpenses, input.SafeWithdrawalRate, realRate, years)
	if err != nil {
		return nil, err
	}

	trajectory := ProjectAnnual(input.InvestedAmount, input.MonthlyContribution, realRate, years)

	result := &domain.SimulationResult{
		FIRETarget:      fire,
		CoastFIRETarget: coast,
		Trajectory:      trajectory,
		ReachesFIRE:     ReachesTarget(trajectory, fire),
	}

	if idx, ok := FirstCrossing(trajectory, coast); ok {
		age := input.CurrentAge + idx
		result.CoastReachedAge = &age
	}

	if !result.ReachesFIRE {
		result.Hints = adviseOnShortfall(input)
	}

	e.Logger.Debugf("simulation: fire=%s coast=%s points=%d reaches=%t",
		fire.StringFixed(2), coast.StringFixed(2), len(trajectory), result.ReachesFIRE)

	return result, nil
}

// EvaluateProgress runs the progress evaluation against the latest persisted
// simulation and the contribution ledger as of now.
func (e *Engine) EvaluateProgress(ctx context.Context, record *domain.SimulationRecord, ledger []domain.ContributionRecord, today time.Time) (*domain.ProgressSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	summary, err := EvaluateProgress(record, ledger, today)
	if err != nil {
		e.Logger.Warnf("progress evaluation failed: %v", err)
		return nil, err
	}
	return summary, nil
}

var (
	minSuggestedContribution = decimal.NewFromInt(200)
	lowReturnThreshold       = decimal.NewFromFloat(0.06)
)

// adviseOnShortfall produces the advisory hints shown when a simulation does
// not reach the FIRE target within the horizon.
func adviseOnShortfall(input *domain.SimulationInput) []string {
	var hints []string
	if input.MonthlyContribution.LessThan(minSuggestedContribution) {
		hints = append(hints, "increase the monthly contribution")
	}
	if input.YearsToRetirement() < 10 {
		hints = append(hints, "consider delaying the retirement age")
	}
	if input.NominalReturn.LessThan(lowReturnThreshold) {
		hints = append(hints, "revisit the expected rate of return (it is conservative)")
	}
	return hints
}
