// Package service wires the persistent store and the three registries
// together, providing a single entry point for the CLI and TUI frontends.
package service

import (
	"fmt"

	"github.com/RoyalZSoftware/management-cli/internal/config"
	"github.com/RoyalZSoftware/management-cli/internal/customer"
	"github.com/RoyalZSoftware/management-cli/internal/invoice"
	"github.com/RoyalZSoftware/management-cli/internal/store"
	"github.com/RoyalZSoftware/management-cli/internal/timetrack"
)

// Services holds all registries used by the application
type Services struct {
	Store     *store.Store
	Customers *customer.Registry
	Invoices  *invoice.Ledger
	Tracking  *timetrack.Ledger
	Config    config.Config
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	dataPath, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPath(dataPath, cfg), nil
}

// NewServicesWithPath creates a new Services instance against a specific
// data document (useful for testing).
func NewServicesWithPath(dataPath string, cfg config.Config) *Services {
	st := store.New(dataPath)
	customers := customer.NewRegistry(st)
	invoices := invoice.NewLedger(st, customers)
	invoices.SetLockFinalized(cfg.LockFinalized)
	tracking := timetrack.NewLedger(st)

	return &Services{
		Store:     st,
		Customers: customers,
		Invoices:  invoices,
		Tracking:  tracking,
		Config:    cfg,
	}
}

// Load populates all registries from the data document. Customers are
// loaded first so that invoice customer references can be resolved.
func (s *Services) Load() error {
	if err := s.Customers.Load(); err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	if err := s.Invoices.Load(); err != nil {
		return fmt.Errorf("failed to load invoices: %w", err)
	}
	if err := s.Tracking.Load(); err != nil {
		return fmt.Errorf("failed to load time tracking entries: %w", err)
	}
	return nil
}
