package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/firetrack/fire-tracker/pkg/numparse"
)

// scenarioDocument is the on-disk shape of a simulation scenario. Monetary and
// rate fields are strings so locale formats like "24.000" or "1 234,56 €" and
// percent values like "4" or "4%" are accepted.
type scenarioDocument struct {
	CurrentAge          int    `yaml:"current_age"`
	RetirementAge       int    `yaml:"retirement_age"`
	SafeWithdrawalRate  string `yaml:"safe_withdrawal_rate"`
	AnnualExpenses      string `yaml:"annual_expenses"`
	InvestedAmount      string `yaml:"invested_amount"`
	NominalReturn       string `yaml:"nominal_return"`
	Inflation           string `yaml:"inflation"`
	PortfolioValue      string `yaml:"portfolio_value"`
	MonthlyContribution string `yaml:"monthly_contribution"`
}

// InputParser loads simulation scenarios from YAML files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a scenario from a YAML file. Rate fields
// are given as percents (4 means 4%).
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc scenarioDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	input, err := ip.toInput(&doc)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return input, nil
}

func (ip *InputParser) toInput(doc *scenarioDocument) (*domain.SimulationInput, error) {
	input := &domain.SimulationInput{
		CurrentAge:    doc.CurrentAge,
		RetirementAge: doc.RetirementAge,
	}

	var err error
	if input.SafeWithdrawalRate, err = parsePercentField("safe_withdrawal_rate", doc.SafeWithdrawalRate); err != nil {
		return nil, err
	}
	if input.NominalReturn, err = parsePercentField("nominal_return", doc.NominalReturn); err != nil {
		return nil, err
	}
	if input.Inflation, err = parsePercentField("inflation", doc.Inflation); err != nil {
		return nil, err
	}
	if input.AnnualExpenses, err = parseAmountField("annual_expenses", doc.AnnualExpenses); err != nil {
		return nil, err
	}
	if input.InvestedAmount, err = parseAmountField("invested_amount", doc.InvestedAmount); err != nil {
		return nil, err
	}
	if input.PortfolioValue, err = parseAmountField("portfolio_value", doc.PortfolioValue); err != nil {
		return nil, err
	}
	if input.MonthlyContribution, err = parseAmountField("monthly_contribution", doc.MonthlyContribution); err != nil {
		return nil, err
	}
	return input, nil
}

func parseAmountField(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := numparse.ParseAmount(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("field %s: %w", name, err)
	}
	return d, nil
}

func parsePercentField(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := numparse.ParsePercent(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("field %s: %w", name, err)
	}
	return d, nil
}
