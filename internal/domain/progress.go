package domain

import (
	"github.com/shopspring/decimal"
)

// ProgressStatus classifies how actual savings compare to the theoretical
// required trajectory.
type ProgressStatus string

const (
	StatusBehind              ProgressStatus = "behind"
	StatusOnTrack             ProgressStatus = "on_track"
	StatusAhead               ProgressStatus = "ahead"
	StatusInsufficientHistory ProgressStatus = "insufficient_history"
)

// ProgressSummary is the structured outcome of the progress evaluation.
type ProgressSummary struct {
	FIRETarget         decimal.Decimal `json:"fire_target"`
	RetirementAge      int             `json:"retirement_age"`
	YearsRemaining     int             `json:"years_remaining"`
	RequiredMonthly    decimal.Decimal `json:"required_monthly"`
	MonthsElapsed      int             `json:"months_elapsed"`
	ExpectedValueToday decimal.Decimal `json:"expected_value_today"`
	ActualValue        decimal.Decimal `json:"actual_value"`
	Difference         decimal.Decimal `json:"difference"`
	PercentOfTarget    decimal.Decimal `json:"percent_of_target"`
	Status             ProgressStatus  `json:"status"`
}
