package output

import (
	"fmt"
	"strings"

	"github.com/firetrack/fire-tracker/internal/domain"
)

// ConsoleFormatter renders human-readable text for the terminal.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) FormatSimulation(report *SimulationReport) ([]byte, error) {
	if report == nil || report.Input == nil || report.Result == nil {
		return nil, fmt.Errorf("nil simulation report")
	}
	input, result := report.Input, report.Result

	var b strings.Builder
	b.WriteString("FIRE PROJECTION\n")
	b.WriteString("===============\n\n")

	fmt.Fprintf(&b, "Current age:        %d\n", input.CurrentAge)
	fmt.Fprintf(&b, "Retirement age:     %d (%d years away)\n", input.RetirementAge, input.YearsToRetirement())
	fmt.Fprintf(&b, "Real rate:          %s\n", FormatPercentage(input.RealRate().Mul(oneHundred)))
	fmt.Fprintf(&b, "FIRE target:        %s\n", FormatCurrency(result.FIRETarget))
	fmt.Fprintf(&b, "Coast FIRE target:  %s\n", FormatCurrency(result.CoastFIRETarget))
	b.WriteString("\n")

	if result.ReachesFIRE {
		b.WriteString("The projection reaches the FIRE target by retirement.\n")
	} else {
		b.WriteString("The projection does NOT reach the FIRE target by retirement.\n")
	}
	if result.CoastReachedAge != nil {
		fmt.Fprintf(&b, "Coast FIRE is reached at age %d.\n", *result.CoastReachedAge)
	}
	b.WriteString("\n")

	b.WriteString("Age    Projected Value\n")
	b.WriteString("---    ---------------\n")
	for i, value := range result.Trajectory {
		marker := ""
		if value.GreaterThanOrEqual(result.FIRETarget) {
			marker = "  << FIRE"
		} else if value.GreaterThanOrEqual(result.CoastFIRETarget) {
			marker = "  << coast"
		}
		fmt.Fprintf(&b, "%-6d %18s%s\n", input.CurrentAge+i, FormatCurrency(value), marker)
	}

	if len(result.Hints) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, hint := range result.Hints {
			fmt.Fprintf(&b, "  - %s\n", hint)
		}
	}

	return []byte(b.String()), nil
}

func (ConsoleFormatter) FormatProgress(summary *domain.ProgressSummary) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("nil progress summary")
	}

	var b strings.Builder
	b.WriteString("FIRE PROGRESS\n")
	b.WriteString("=============\n\n")

	fmt.Fprintf(&b, "FIRE target:           %s\n", FormatCurrency(summary.FIRETarget))
	fmt.Fprintf(&b, "Retirement age:        %d (%d years remaining)\n", summary.RetirementAge, summary.YearsRemaining)
	fmt.Fprintf(&b, "Required monthly:      %s\n", FormatCurrency(summary.RequiredMonthly))
	fmt.Fprintf(&b, "Months of history:     %d\n", summary.MonthsElapsed)
	fmt.Fprintf(&b, "Expected value today:  %s\n", FormatCurrency(summary.ExpectedValueToday))
	fmt.Fprintf(&b, "Actual value:          %s\n", FormatCurrency(summary.ActualValue))
	fmt.Fprintf(&b, "Difference:            %s\n", FormatCurrency(summary.Difference))
	fmt.Fprintf(&b, "Percent of target:     %s\n", FormatPercentage(summary.PercentOfTarget))
	b.WriteString("\n")

	switch summary.Status {
	case domain.StatusAhead:
		b.WriteString("Status: AHEAD of the required trajectory.\n")
	case domain.StatusBehind:
		b.WriteString("Status: BEHIND the required trajectory.\n")
	case domain.StatusOnTrack:
		b.WriteString("Status: ON TRACK.\n")
	default:
		b.WriteString("Status: not enough contribution history to evaluate.\n")
	}

	return []byte(b.String()), nil
}
