// Package config loads the TOML application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for config directory
	AppName = "management-cli"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Business identifies the invoicing party on rendered documents.
type Business struct {
	Name        string `toml:"name"`
	Email       string `toml:"email"`
	Address     string `toml:"address"`
	BankDetails string `toml:"bank_details"`
}

// Config represents the application configuration
type Config struct {
	// Currency is the ISO currency code shown on invoices
	Currency string `toml:"currency"`
	// DefaultTaxPercentage is the tax rate applied to new positions
	DefaultTaxPercentage float64 `toml:"default_tax_percentage"`
	// DefaultHourlyRate is the rate used when a position is given in hours
	DefaultHourlyRate float64 `toml:"default_hourly_rate"`
	// DefaultDueInDays is the payment term for new invoices
	DefaultDueInDays int `toml:"default_due_in_days"`
	// LockFinalized rejects position changes on finalized invoices
	LockFinalized bool `toml:"lock_finalized"`
	// Business is printed as the sender block on generated PDFs
	Business Business `toml:"business"`
}

// DefaultConfig returns a Config with the defaults the tool has always
// used: 19% tax, 90 per hour, invoices due in 14 days.
func DefaultConfig() Config {
	return Config{
		Currency:             "EUR",
		DefaultTaxPercentage: 19,
		DefaultHourlyRate:    90,
		DefaultDueInDays:     14,
		LockFinalized:        false,
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at the given path.
// Returns the default configuration if the file doesn't exist.
// Returns an error if the file exists but cannot be read or parsed.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the config to the given path in TOML format.
func Save(path string, cfg Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return toml.NewEncoder(file).Encode(cfg)
}
