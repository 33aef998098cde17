package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/firetrack/fire-tracker/internal/domain"
)

// SimulationReport pairs a simulation's inputs with its results for
// formatting.
type SimulationReport struct {
	Input  *domain.SimulationInput  `json:"input"`
	Result *domain.SimulationResult `json:"result"`
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	FormatSimulation(report *SimulationReport) ([]byte, error)
	FormatProgress(summary *domain.ProgressSummary) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter, nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter identifiers.
func FormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}

// WriteSimulationReport runs a formatter and writes output to a timestamped
// file with the given extension.
func WriteSimulationReport(f Formatter, report *SimulationReport, ext string) (string, error) {
	data, err := f.FormatSimulation(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("fire_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
