// Package store owns persistence for simulation records, the contribution
// ledger, the user profile and the asset color registry.
//
// The design assumes a single writer per user (one interactive session); the
// read-modify-write cycles here carry no cross-process locking.
package store

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/oklog/ulid/v2"
)

// ErrNotFound is returned when a store has not been initialized yet.
var ErrNotFound = errors.New("store: not found")

// UserContext resolves the per-user data paths. It is passed explicitly into
// store constructors; there is no mutable global path state.
type UserContext struct {
	User    string
	DataDir string
}

// NewUserContext builds the context for a user under the base data directory.
func NewUserContext(user, baseDir string) UserContext {
	return UserContext{User: user, DataDir: filepath.Join(baseDir, user)}
}

// EnsureDir creates the user's data directory if it does not exist.
func (uc UserContext) EnsureDir() error {
	return os.MkdirAll(uc.DataDir, 0o755)
}

func (uc UserContext) SimulationsPath() string { return filepath.Join(uc.DataDir, "simulations.csv") }
func (uc UserContext) ContributionsPath() string {
	return filepath.Join(uc.DataDir, "contributions.csv")
}
func (uc UserContext) ProfilePath() string     { return filepath.Join(uc.DataDir, "profile.json") }
func (uc UserContext) AssetColorsPath() string { return filepath.Join(uc.DataDir, "asset_colors.csv") }
func (uc UserContext) DatabasePath() string    { return filepath.Join(uc.DataDir, "firetrack.sqlite") }

// SimulationStore is the append-only historical record of simulations, keyed
// by calendar date: writing a record for an existing date replaces that day's
// entry instead of duplicating it.
type SimulationStore interface {
	// Init seeds the empty structure if nothing is persisted yet.
	Init() error
	// AppendOrReplace writes a record, replacing any record with the same date.
	AppendOrReplace(record domain.SimulationRecord) error
	// LoadAll returns all records in append order. ErrNotFound when the store
	// was never initialized.
	LoadAll() ([]domain.SimulationRecord, error)
	// Latest returns the trailing record (last appended, not necessarily the
	// most recent by date). ErrNotFound when empty.
	Latest() (*domain.SimulationRecord, error)
}

// ContributionLedger is the append-only log of contributions to tracked
// assets.
type ContributionLedger interface {
	Init() error
	// Append validates and writes a record, assigning an ID when absent.
	Append(record domain.ContributionRecord) error
	// LoadAll returns all records in append order. ErrNotFound when the
	// ledger was never initialized.
	LoadAll() ([]domain.ContributionRecord, error)
}

// newRecordID mints a ledger record ID.
func newRecordID() string {
	return ulid.Make().String()
}
