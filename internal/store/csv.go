package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

var simulationHeader = []string{
	"Date", "Current Age", "Retirement Age", "SWR (%)", "Annual Expenses",
	"Invested", "Return (%)", "Inflation (%)", "Portfolio Value",
	"Monthly Contribution", "FIRE Target", "Coast FIRE Target",
}

var contributionHeader = []string{
	"ID", "Date", "Asset", "Quantity", "Amount Invested", "Return (%)", "Portfolio Value",
}

// SimulationCSV persists simulation records in a single CSV file, one row per
// calendar date. Writes rewrite the whole file.
type SimulationCSV struct {
	path string
}

// NewSimulationCSV creates a CSV-backed simulation store at path.
func NewSimulationCSV(path string) *SimulationCSV {
	return &SimulationCSV{path: path}
}

func (s *SimulationCSV) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	return s.writeAll(nil)
}

func (s *SimulationCSV) AppendOrReplace(record domain.SimulationRecord) error {
	records, err := s.LoadAll()
	if err != nil && err != ErrNotFound {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.Date != record.Date {
			kept = append(kept, r)
		}
	}
	kept = append(kept, record)

	return s.writeAll(kept)
}

func (s *SimulationCSV) LoadAll() ([]domain.SimulationRecord, error) {
	rows, err := readCSVFile(s.path)
	if err != nil {
		return nil, err
	}

	var records []domain.SimulationRecord
	for _, row := range rows {
		rec, ok := parseSimulationRow(row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *SimulationCSV) Latest() (*domain.SimulationRecord, error) {
	records, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return &records[len(records)-1], nil
}

func (s *SimulationCSV) writeAll(records []domain.SimulationRecord) error {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(simulationHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Date,
			strconv.Itoa(r.CurrentAge),
			strconv.Itoa(r.RetirementAge),
			r.SWRPercent.String(),
			r.AnnualExpenses.String(),
			r.InvestedAmount.String(),
			r.ReturnPercent.String(),
			r.InflationPercent.String(),
			r.PortfolioValue.String(),
			r.MonthlyContribution.String(),
			r.FIRETarget.String(),
			r.CoastFIRETarget.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return os.WriteFile(s.path, buf.Bytes(), 0o644)
}

func parseSimulationRow(row []string) (domain.SimulationRecord, bool) {
	if len(row) != len(simulationHeader) || row[0] == "Date" {
		return domain.SimulationRecord{}, false
	}

	currentAge, err := strconv.Atoi(row[1])
	if err != nil {
		return domain.SimulationRecord{}, false
	}
	retirementAge, err := strconv.Atoi(row[2])
	if err != nil {
		return domain.SimulationRecord{}, false
	}

	rec := domain.SimulationRecord{Date: row[0], CurrentAge: currentAge, RetirementAge: retirementAge}
	for _, field := range []struct {
		value string
		dst   *decimal.Decimal
	}{
		{row[3], &rec.SWRPercent},
		{row[4], &rec.AnnualExpenses},
		{row[5], &rec.InvestedAmount},
		{row[6], &rec.ReturnPercent},
		{row[7], &rec.InflationPercent},
		{row[8], &rec.PortfolioValue},
		{row[9], &rec.MonthlyContribution},
		{row[10], &rec.FIRETarget},
		{row[11], &rec.CoastFIRETarget},
	} {
		// Rows are the store's own canonical output; locale normalization
		// would mangle values with three fraction digits.
		d, err := decimal.NewFromString(field.value)
		if err != nil {
			return domain.SimulationRecord{}, false
		}
		*field.dst = d
	}
	return rec, true
}

// ContributionCSV persists the contribution ledger in a single CSV file.
type ContributionCSV struct {
	path string
}

// NewContributionCSV creates a CSV-backed contribution ledger at path.
func NewContributionCSV(path string) *ContributionCSV {
	return &ContributionCSV{path: path}
}

func (c *ContributionCSV) Init() error {
	if _, err := os.Stat(c.path); err == nil {
		return nil
	}
	return c.writeAll(nil)
}

func (c *ContributionCSV) Append(record domain.ContributionRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid contribution: %w", err)
	}
	if record.ID == "" {
		record.ID = newRecordID()
	}

	records, err := c.LoadAll()
	if err != nil && err != ErrNotFound {
		return err
	}
	records = append(records, record)
	return c.writeAll(records)
}

func (c *ContributionCSV) LoadAll() ([]domain.ContributionRecord, error) {
	rows, err := readCSVFile(c.path)
	if err != nil {
		return nil, err
	}

	var records []domain.ContributionRecord
	for _, row := range rows {
		rec, ok := parseContributionRow(row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *ContributionCSV) writeAll(records []domain.ContributionRecord) error {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(contributionHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.Date,
			r.Asset,
			r.Quantity.String(),
			r.AmountInvested.String(),
			r.ReturnPercent.String(),
			r.PortfolioValue.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return os.WriteFile(c.path, buf.Bytes(), 0o644)
}

func parseContributionRow(row []string) (domain.ContributionRecord, bool) {
	if len(row) != len(contributionHeader) || row[0] == "ID" {
		return domain.ContributionRecord{}, false
	}

	rec := domain.ContributionRecord{ID: row[0], Date: row[1], Asset: row[2]}
	for _, field := range []struct {
		value string
		dst   *decimal.Decimal
	}{
		{row[3], &rec.Quantity},
		{row[4], &rec.AmountInvested},
		{row[5], &rec.ReturnPercent},
		{row[6], &rec.PortfolioValue},
	} {
		d, err := decimal.NewFromString(field.value)
		if err != nil {
			return domain.ContributionRecord{}, false
		}
		*field.dst = d
	}
	return rec, true
}

// readCSVFile reads all data rows from a CSV file. A missing file maps to
// ErrNotFound; an unreadable file is treated as empty (the caller's next
// write resets it), matching the corrupt-state policy.
func readCSVFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil
	}
	return rows, nil
}
