package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CSVFormatter renders the yearly trajectory (or progress figures) as CSV for
// spreadsheet import.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) FormatSimulation(report *SimulationReport) ([]byte, error) {
	if report == nil || report.Input == nil || report.Result == nil {
		return nil, fmt.Errorf("nil simulation report")
	}
	input, result := report.Input, report.Result

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Age", "Projected Value", "FIRE Target", "Coast FIRE Target"}); err != nil {
		return nil, err
	}
	for i, value := range result.Trajectory {
		row := []string{
			strconv.Itoa(input.CurrentAge + i),
			value.StringFixed(2),
			result.FIRETarget.StringFixed(2),
			result.CoastFIRETarget.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (CSVFormatter) FormatProgress(summary *domain.ProgressSummary) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("nil progress summary")
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{
		{"Metric", "Value"},
		{"FIRE Target", summary.FIRETarget.StringFixed(2)},
		{"Retirement Age", strconv.Itoa(summary.RetirementAge)},
		{"Years Remaining", strconv.Itoa(summary.YearsRemaining)},
		{"Required Monthly", summary.RequiredMonthly.StringFixed(2)},
		{"Months Elapsed", strconv.Itoa(summary.MonthsElapsed)},
		{"Expected Value Today", summary.ExpectedValueToday.StringFixed(2)},
		{"Actual Value", summary.ActualValue.StringFixed(2)},
		{"Difference", summary.Difference.StringFixed(2)},
		{"Percent of Target", summary.PercentOfTarget.StringFixed(2)},
		{"Status", string(summary.Status)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
