package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreCSV    = "csv"
	StoreSQLite = "sqlite"
)

// AppConfig holds the application-level settings.
type AppConfig struct {
	User    string `yaml:"user"`
	DataDir string `yaml:"data_dir"`
	Store   string `yaml:"store"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the configuration used when no config file exists.
func Default() *AppConfig {
	return &AppConfig{
		User:    "default",
		DataDir: "data",
		Store:   StoreCSV,
	}
}

// LoadAppConfig reads the application config from a YAML file. A missing file
// yields the default configuration.
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration is usable.
func (c *AppConfig) Validate() error {
	if c.User == "" {
		return fmt.Errorf("user is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Store != StoreCSV && c.Store != StoreSQLite {
		return fmt.Errorf("store must be %q or %q, got %q", StoreCSV, StoreSQLite, c.Store)
	}
	return nil
}
