package output

import (
	"encoding/json"
	"fmt"

	"github.com/firetrack/fire-tracker/internal/domain"
)

// JSONFormatter renders machine-readable JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) FormatSimulation(report *SimulationReport) ([]byte, error) {
	if report == nil || report.Input == nil || report.Result == nil {
		return nil, fmt.Errorf("nil simulation report")
	}
	return json.MarshalIndent(report, "", "  ")
}

func (JSONFormatter) FormatProgress(summary *domain.ProgressSummary) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("nil progress summary")
	}
	return json.MarshalIndent(summary, "", "  ")
}
