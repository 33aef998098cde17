package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// SQLiteStore backs both the simulation store and the contribution ledger
// with a single SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates, if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Simulations returns the simulation store view of the database.
func (s *SQLiteStore) Simulations() SimulationStore {
	return &sqliteSimulations{db: s.db}
}

// Contributions returns the contribution ledger view of the database.
func (s *SQLiteStore) Contributions() ContributionLedger {
	return &sqliteContributions{db: s.db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqliteSimulations struct {
	db *sql.DB
}

func (s *sqliteSimulations) Init() error { return nil } // schema created on open

func (s *sqliteSimulations) AppendOrReplace(record domain.SimulationRecord) error {
	// INSERT OR REPLACE on the date primary key keeps one row per day and
	// assigns a fresh rowid, preserving last-write append order.
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO simulations
		(date, current_age, retirement_age, swr_pct, annual_expenses, invested,
		 return_pct, inflation_pct, portfolio_value, monthly_contribution,
		 fire_target, coast_fire_target)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Date, record.CurrentAge, record.RetirementAge,
		record.SWRPercent.String(), record.AnnualExpenses.String(),
		record.InvestedAmount.String(), record.ReturnPercent.String(),
		record.InflationPercent.String(), record.PortfolioValue.String(),
		record.MonthlyContribution.String(), record.FIRETarget.String(),
		record.CoastFIRETarget.String(),
	)
	return err
}

const simulationColumns = `date, current_age, retirement_age, swr_pct, annual_expenses, invested,
	return_pct, inflation_pct, portfolio_value, monthly_contribution, fire_target, coast_fire_target`

func (s *sqliteSimulations) LoadAll() ([]domain.SimulationRecord, error) {
	rows, err := s.db.Query(`SELECT ` + simulationColumns + ` FROM simulations ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SimulationRecord
	for rows.Next() {
		rec, err := scanSimulation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *sqliteSimulations) Latest() (*domain.SimulationRecord, error) {
	row := s.db.QueryRow(`SELECT ` + simulationColumns + ` FROM simulations ORDER BY rowid DESC LIMIT 1`)
	rec, err := scanSimulation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSimulation(row rowScanner) (domain.SimulationRecord, error) {
	var rec domain.SimulationRecord
	var swr, expenses, invested, ret, infl, portfolio, monthly, fire, coast string

	if err := row.Scan(&rec.Date, &rec.CurrentAge, &rec.RetirementAge,
		&swr, &expenses, &invested, &ret, &infl, &portfolio, &monthly, &fire, &coast); err != nil {
		return domain.SimulationRecord{}, err
	}

	for _, field := range []struct {
		value string
		dst   *decimal.Decimal
	}{
		{swr, &rec.SWRPercent}, {expenses, &rec.AnnualExpenses},
		{invested, &rec.InvestedAmount}, {ret, &rec.ReturnPercent},
		{infl, &rec.InflationPercent}, {portfolio, &rec.PortfolioValue},
		{monthly, &rec.MonthlyContribution}, {fire, &rec.FIRETarget},
		{coast, &rec.CoastFIRETarget},
	} {
		d, err := decimal.NewFromString(field.value)
		if err != nil {
			return domain.SimulationRecord{}, fmt.Errorf("corrupt simulation row for %s: %w", rec.Date, err)
		}
		*field.dst = d
	}
	return rec, nil
}

type sqliteContributions struct {
	db *sql.DB
}

func (c *sqliteContributions) Init() error { return nil }

func (c *sqliteContributions) Append(record domain.ContributionRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid contribution: %w", err)
	}
	if record.ID == "" {
		record.ID = newRecordID()
	}

	_, err := c.db.Exec(`
		INSERT INTO contributions
		(id, date, asset, quantity, amount_invested, return_pct, portfolio_value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Date, record.Asset,
		record.Quantity.String(), record.AmountInvested.String(),
		record.ReturnPercent.String(), record.PortfolioValue.String(),
	)
	return err
}

func (c *sqliteContributions) LoadAll() ([]domain.ContributionRecord, error) {
	rows, err := c.db.Query(`
		SELECT id, date, asset, quantity, amount_invested, return_pct, portfolio_value
		FROM contributions
		ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ContributionRecord
	for rows.Next() {
		var rec domain.ContributionRecord
		var quantity, amount, ret, portfolio string
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Asset, &quantity, &amount, &ret, &portfolio); err != nil {
			return nil, err
		}
		for _, field := range []struct {
			value string
			dst   *decimal.Decimal
		}{
			{quantity, &rec.Quantity}, {amount, &rec.AmountInvested},
			{ret, &rec.ReturnPercent}, {portfolio, &rec.PortfolioValue},
		} {
			d, err := decimal.NewFromString(field.value)
			if err != nil {
				return nil, fmt.Errorf("corrupt contribution row %s: %w", rec.ID, err)
			}
			*field.dst = d
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
