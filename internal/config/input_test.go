package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarioFromFile(t *testing.T) {
	path := writeScenario(t, `
current_age: 30
retirement_age: 65
safe_withdrawal_rate: "4"
annual_expenses: "24.000"
invested_amount: "10000"
nominal_return: "5%"
inflation: "2"
portfolio_value: "12.500,00 €"
monthly_contribution: "500"
`)

	input, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 30, input.CurrentAge)
	assert.Equal(t, 65, input.RetirementAge)
	assert.True(t, input.SafeWithdrawalRate.Equal(decimal.NewFromFloat(0.04)),
		"swr = %s", input.SafeWithdrawalRate)
	assert.True(t, input.AnnualExpenses.Equal(decimal.NewFromInt(24000)))
	assert.True(t, input.PortfolioValue.Equal(decimal.NewFromFloat(12500)),
		"portfolio = %s", input.PortfolioValue)
	assert.True(t, input.RealRate().Equal(decimal.NewFromFloat(0.03)))
}

func TestLoadScenarioRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero swr", "current_age: 30\nretirement_age: 65\nannual_expenses: \"24000\"\n"},
		{"retirement before current age", "current_age: 65\nretirement_age: 30\nsafe_withdrawal_rate: \"4\"\n"},
		{"unparseable amount", "current_age: 30\nretirement_age: 65\nsafe_withdrawal_rate: \"4\"\nannual_expenses: \"abc\"\n"},
		{"broken yaml", "current_age: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().LoadFromFile(writeScenario(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
