package domain

import (
	"fmt"
	"time"

	"github.com/firetrack/fire-tracker/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ContributionRecord is a single logged contribution to a tracked asset.
// Owned by the ledger; the progress evaluator reads it read-only.
type ContributionRecord struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Asset          string          `json:"asset"`
	Quantity       decimal.Decimal `json:"quantity"`
	AmountInvested decimal.Decimal `json:"amount_invested"`
	ReturnPercent  decimal.Decimal `json:"return_percent"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`
}

// Validate checks the ledger entry before it is appended.
func (cr *ContributionRecord) Validate() error {
	if cr.Asset == "" {
		return fmt.Errorf("asset label is required")
	}
	if _, err := dateutil.ParseISODate(cr.Date); err != nil {
		return fmt.Errorf("invalid contribution date %q: %w", cr.Date, err)
	}
	if cr.Quantity.IsNegative() {
		return fmt.Errorf("quantity cannot be negative")
	}
	if cr.AmountInvested.IsNegative() {
		return fmt.Errorf("amount invested cannot be negative")
	}
	return nil
}

// EarliestContributionDate scans a ledger for the earliest parseable date.
// It returns false when the ledger is empty or no date parses.
func EarliestContributionDate(ledger []ContributionRecord) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, rec := range ledger {
		d, err := dateutil.ParseISODate(rec.Date)
		if err != nil {
			continue
		}
		if !found || d.Before(earliest) {
			earliest = d
			found = true
		}
	}
	return earliest, found
}

// Profile holds the per-user profile data. An empty birth date means the user
// never set one and manually entered ages are used instead.
type Profile struct {
	BirthDate string `json:"birth_date"`
}

// Age derives the current age from the profile birth date at the given time.
// Returns false when no birth date is set or it does not parse.
func (p *Profile) Age(at time.Time) (int, bool) {
	if p.BirthDate == "" {
		return 0, false
	}
	birth, err := dateutil.ParseISODate(p.BirthDate)
	if err != nil {
		return 0, false
	}
	return dateutil.Age(birth, at), true
}
