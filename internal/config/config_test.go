package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, expected EUR", cfg.Currency)
	}
	if cfg.DefaultTaxPercentage != 19 {
		t.Errorf("DefaultTaxPercentage = %v, expected 19", cfg.DefaultTaxPercentage)
	}
	if cfg.DefaultHourlyRate != 90 {
		t.Errorf("DefaultHourlyRate = %v, expected 90", cfg.DefaultHourlyRate)
	}
	if cfg.DefaultDueInDays != 14 {
		t.Errorf("DefaultDueInDays = %v, expected 14", cfg.DefaultDueInDays)
	}
	if cfg.LockFinalized {
		t.Error("LockFinalized should default to false")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadOrDefault() on missing file = %+v, expected defaults", cfg)
	}
}

func TestLoadOrDefault_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `currency = "USD"
default_tax_percentage = 7.5
default_hourly_rate = 120.0
lock_finalized = true

[business]
name = "Royal Software"
email = "mail@royal.test"
bank_details = "DE02 1203 0000 0000 2020 51"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config failed: %v", err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, expected USD", cfg.Currency)
	}
	if cfg.DefaultTaxPercentage != 7.5 {
		t.Errorf("DefaultTaxPercentage = %v, expected 7.5", cfg.DefaultTaxPercentage)
	}
	if cfg.DefaultHourlyRate != 120 {
		t.Errorf("DefaultHourlyRate = %v, expected 120", cfg.DefaultHourlyRate)
	}
	if !cfg.LockFinalized {
		t.Error("LockFinalized = false, expected true")
	}
	// Keys absent from the file keep their defaults.
	if cfg.DefaultDueInDays != 14 {
		t.Errorf("DefaultDueInDays = %v, expected default 14", cfg.DefaultDueInDays)
	}
	if cfg.Business.Name != "Royal Software" {
		t.Errorf("Business.Name = %q, expected Royal Software", cfg.Business.Name)
	}
}

func TestLoadOrDefault_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("currency = [broken"), 0644); err != nil {
		t.Fatalf("writing config failed: %v", err)
	}

	if _, err := LoadOrDefault(path); err == nil {
		t.Error("LoadOrDefault() should fail on malformed TOML")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	original := Config{
		Currency:             "CHF",
		DefaultTaxPercentage: 8.1,
		DefaultHourlyRate:    150,
		DefaultDueInDays:     30,
		LockFinalized:        true,
		Business: Business{
			Name:    "Royal Software",
			Email:   "mail@royal.test",
			Address: "Hauptstrasse 1",
		},
	}

	if err := Save(path, original); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}

	loaded, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}
	if loaded != original {
		t.Errorf("round-trip mismatch:\nsaved:  %+v\nloaded: %+v", original, loaded)
	}
}
