package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SimulationInput holds all parameters for a single FIRE simulation run.
// Rate fields are fractions (0.04 means 4%); money fields are currency units.
type SimulationInput struct {
	CurrentAge          int             `yaml:"current_age" json:"current_age"`
	RetirementAge       int             `yaml:"retirement_age" json:"retirement_age"`
	SafeWithdrawalRate  decimal.Decimal `yaml:"safe_withdrawal_rate" json:"safe_withdrawal_rate"`
	AnnualExpenses      decimal.Decimal `yaml:"annual_expenses" json:"annual_expenses"`
	InvestedAmount      decimal.Decimal `yaml:"invested_amount" json:"invested_amount"`
	NominalReturn       decimal.Decimal `yaml:"nominal_return" json:"nominal_return"`
	Inflation           decimal.Decimal `yaml:"inflation" json:"inflation"`
	PortfolioValue      decimal.Decimal `yaml:"portfolio_value" json:"portfolio_value"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
}

// RealRate returns the inflation-adjusted rate of return. It may be negative
// in deflationary or pessimistic scenarios.
func (si *SimulationInput) RealRate() decimal.Decimal {
	return si.NominalReturn.Sub(si.Inflation)
}

// YearsToRetirement returns the projection horizon in years.
func (si *SimulationInput) YearsToRetirement() int {
	return si.RetirementAge - si.CurrentAge
}

// Validate checks the input against the data model constraints.
func (si *SimulationInput) Validate() error {
	if si.CurrentAge < 0 {
		return fmt.Errorf("current age cannot be negative")
	}
	if si.RetirementAge < si.CurrentAge {
		return fmt.Errorf("retirement age (%d) cannot be before current age (%d)", si.RetirementAge, si.CurrentAge)
	}
	if si.SafeWithdrawalRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("safe withdrawal rate must be positive")
	}
	if si.AnnualExpenses.IsNegative() {
		return fmt.Errorf("annual expenses cannot be negative")
	}
	if si.InvestedAmount.IsNegative() {
		return fmt.Errorf("invested amount cannot be negative")
	}
	if si.PortfolioValue.IsNegative() {
		return fmt.Errorf("portfolio value cannot be negative")
	}
	if si.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	return nil
}

// SimulationResult is the derived outcome of a simulation. Immutable once
// computed.
type SimulationResult struct {
	FIRETarget      decimal.Decimal   `json:"fire_target"`
	CoastFIRETarget decimal.Decimal   `json:"coast_fire_target"`
	Trajectory      []decimal.Decimal `json:"trajectory"`
	ReachesFIRE     bool              `json:"reaches_fire"`

	// CoastReachedAge is the age at the first trajectory point at or above
	// the coast target, nil when the trajectory never crosses it.
	CoastReachedAge *int `json:"coast_reached_age,omitempty"`

	// Hints carries advisory suggestions when the FIRE target is not reached.
	Hints []string `json:"hints,omitempty"`
}

// SimulationRecord is the persisted snapshot of a simulation, one per calendar
// date. Percent-valued fields are stored as percents (4 means 4%), mirroring
// the historical record schema.
type SimulationRecord struct {
	Date                string          `json:"date"`
	CurrentAge          int             `json:"current_age"`
	RetirementAge       int             `json:"retirement_age"`
	SWRPercent          decimal.Decimal `json:"swr_percent"`
	AnnualExpenses      decimal.Decimal `json:"annual_expenses"`
	InvestedAmount      decimal.Decimal `json:"invested_amount"`
	ReturnPercent       decimal.Decimal `json:"return_percent"`
	InflationPercent    decimal.Decimal `json:"inflation_percent"`
	PortfolioValue      decimal.Decimal `json:"portfolio_value"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	FIRETarget          decimal.Decimal `json:"fire_target"`
	CoastFIRETarget     decimal.Decimal `json:"coast_fire_target"`
}

var oneHundred = decimal.NewFromInt(100)

// SWR returns the stored safe withdrawal rate as a fraction.
func (sr *SimulationRecord) SWR() decimal.Decimal {
	return sr.SWRPercent.Div(oneHundred)
}

// RealRate returns the stored real rate (return minus inflation) as a fraction.
func (sr *SimulationRecord) RealRate() decimal.Decimal {
	return sr.ReturnPercent.Sub(sr.InflationPercent).Div(oneHundred)
}

// NewSimulationRecord builds the persisted snapshot for an input and its
// computed targets.
func NewSimulationRecord(date string, input *SimulationInput, result *SimulationResult) SimulationRecord {
	return SimulationRecord{
		Date:                date,
		CurrentAge:          input.CurrentAge,
		RetirementAge:       input.RetirementAge,
		SWRPercent:          input.SafeWithdrawalRate.Mul(oneHundred),
		AnnualExpenses:      input.AnnualExpenses,
		InvestedAmount:      input.InvestedAmount,
		ReturnPercent:       input.NominalReturn.Mul(oneHundred),
		InflationPercent:    input.Inflation.Mul(oneHundred),
		PortfolioValue:      input.PortfolioValue,
		MonthlyContribution: input.MonthlyContribution,
		FIRETarget:          result.FIRETarget,
		CoastFIRETarget:     result.CoastFIRETarget,
	}
}
