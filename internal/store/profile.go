package store

import (
	"encoding/json"
	"os"

	"github.com/firetrack/fire-tracker/internal/domain"
)

// ProfileStore persists the user profile as a small JSON document.
type ProfileStore struct {
	path string
}

// NewProfileStore creates a profile store at path.
func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{path: path}
}

// Load returns the persisted profile. A missing or unreadable file is reset
// to an empty profile on disk before returning it.
func (p *ProfileStore) Load() (domain.Profile, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return p.reset()
		}
		return domain.Profile{}, err
	}

	var profile domain.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return p.reset()
	}
	return profile, nil
}

// Save writes the profile to disk.
func (p *ProfileStore) Save(profile domain.Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

func (p *ProfileStore) reset() (domain.Profile, error) {
	empty := domain.Profile{}
	if err := p.Save(empty); err != nil {
		return domain.Profile{}, err
	}
	return empty, nil
}
