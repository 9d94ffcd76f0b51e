package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RoyalZSoftware/management-cli/internal/customer"
	"github.com/RoyalZSoftware/management-cli/internal/ident"
	"github.com/RoyalZSoftware/management-cli/internal/store"
)

// Collection is the name of the invoices collection in the data document.
const Collection = "invoices"

// Invoice ledger errors
var (
	ErrNotFound           = errors.New("invoice not found")
	ErrIndexOutOfRange    = errors.New("position index out of range")
	ErrDanglingReference  = errors.New("invoice references a missing customer")
	ErrAmbiguousReference = errors.New("invoice id prefix matches more than one invoice")
	ErrFinalized          = errors.New("invoice is finalized")
)

// customerRef is the denormalized customer reference written to disk.
type customerRef struct {
	ID string `json:"id"`
}

// record is the persisted form of an invoice. It matches Invoice except
// that the customer is reduced to an id-only reference; the full customer
// is re-resolved against the registry on load.
type record struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Title     string           `json:"title"`
	DueInDays int              `json:"dueInDays"`
	Number    int              `json:"number"`
	Customer  customerRef      `json:"customer"`
	Positions []Position       `json:"positions"`
	Finalized bool             `json:"finalized"`
	Canceled  bool             `json:"canceled"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
	PaidAt    *time.Time       `json:"paidAt,omitempty"`
}

// ListOptions filters the result of Ledger.List.
type ListOptions struct {
	// After keeps only invoices created strictly after the given time.
	After *time.Time
}

// Ledger is the in-memory collection of invoices, persisted as a whole on
// every mutation.
type Ledger struct {
	store         *store.Store
	customers     *customer.Registry
	invoices      []*Invoice
	lockFinalized bool
}

// NewLedger creates an empty ledger backed by the given store. Customer
// references in loaded invoices are resolved against the given registry,
// which must be loaded first.
func NewLedger(st *store.Store, customers *customer.Registry) *Ledger {
	return &Ledger{store: st, customers: customers}
}

// SetLockFinalized toggles the finalized-state guard on position mutation.
// When enabled, AddPosition and RemovePosition fail with ErrFinalized on a
// finalized invoice.
func (l *Ledger) SetLockFinalized(lock bool) {
	l.lockFinalized = lock
}

// Load populates the ledger from the data document and resolves each
// invoice's customer reference. Fails with ErrDanglingReference if a
// referenced customer no longer exists in the registry.
func (l *Ledger) Load() error {
	var loaded []record
	ok, err := l.store.Load(Collection, &loaded)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	for _, rec := range loaded {
		inv := &Invoice{
			ID:        rec.ID,
			CreatedAt: rec.CreatedAt,
			Title:     rec.Title,
			DueInDays: rec.DueInDays,
			Number:    rec.Number,
			Positions: rec.Positions,
			Finalized: rec.Finalized,
			Canceled:  rec.Canceled,
			Discount:  rec.Discount,
			PaidAt:    rec.PaidAt,
		}

		if rec.Customer.ID != "" {
			cust, err := l.customers.Get(rec.Customer.ID)
			if err != nil {
				return fmt.Errorf("%w: invoice %s, customer %s", ErrDanglingReference, rec.ID, rec.Customer.ID)
			}
			inv.Customer = cust
		}

		l.invoices = append(l.invoices, inv)
	}
	return nil
}

// List returns invoices in storage order, filtered by the given options.
func (l *Ledger) List(opts ListOptions) []*Invoice {
	if opts.After == nil {
		return l.invoices
	}

	var matches []*Invoice
	for _, inv := range l.invoices {
		if inv.CreatedAt.After(*opts.After) {
			matches = append(matches, inv)
		}
	}
	return matches
}

// Get returns the invoice with the given id. If graceful is true and no
// exact match exists, the id is treated as a prefix; a prefix matching more
// than one invoice fails with ErrAmbiguousReference.
func (l *Ledger) Get(id string, graceful bool) (*Invoice, error) {
	for _, inv := range l.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}

	if !graceful {
		return nil, ErrNotFound
	}

	var match *Invoice
	for _, inv := range l.invoices {
		if strings.HasPrefix(inv.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("%w: %q", ErrAmbiguousReference, id)
			}
			match = inv
		}
	}
	if match == nil {
		return nil, ErrNotFound
	}
	return match, nil
}

// Store assigns the next sequential number and a fresh id to the invoice,
// appends it and persists the whole collection. Numbers equal the count of
// stored invoices at insertion time and are never reused.
func (l *Ledger) Store(inv *Invoice) (*Invoice, error) {
	inv.Number = len(l.invoices)
	inv.ID = ident.New()

	l.invoices = append(l.invoices, inv)
	if err := l.save(); err != nil {
		return nil, err
	}
	return inv, nil
}

// AddPosition appends a position to the invoice and persists the ledger.
func (l *Ledger) AddPosition(inv *Invoice, pos Position) error {
	if l.lockFinalized && inv.Finalized {
		return ErrFinalized
	}

	inv.Positions = append(inv.Positions, pos)
	return l.save()
}

// RemovePosition removes the position at the given index and persists the
// ledger. Fails with ErrIndexOutOfRange and leaves the invoice unchanged if
// the index is invalid.
func (l *Ledger) RemovePosition(inv *Invoice, index int) error {
	if l.lockFinalized && inv.Finalized {
		return ErrFinalized
	}
	if index < 0 || index >= len(inv.Positions) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	inv.Positions = append(inv.Positions[:index], inv.Positions[index+1:]...)
	return l.save()
}

// Finalize marks the invoice as finalized and persists the ledger.
func (l *Ledger) Finalize(inv *Invoice) error {
	inv.Finalized = true
	return l.save()
}

// Cancel marks the invoice as canceled and persists the ledger.
func (l *Ledger) Cancel(inv *Invoice) error {
	inv.Canceled = true
	return l.save()
}

// save persists the whole collection with each invoice's customer reduced
// to its id.
func (l *Ledger) save() error {
	records := make([]record, 0, len(l.invoices))
	for _, inv := range l.invoices {
		rec := record{
			ID:        inv.ID,
			CreatedAt: inv.CreatedAt,
			Title:     inv.Title,
			DueInDays: inv.DueInDays,
			Number:    inv.Number,
			Positions: inv.Positions,
			Finalized: inv.Finalized,
			Canceled:  inv.Canceled,
			Discount:  inv.Discount,
			PaidAt:    inv.PaidAt,
		}
		if inv.Customer != nil {
			rec.Customer = customerRef{ID: inv.Customer.ID}
		}
		records = append(records, rec)
	}

	return l.store.Save(Collection, records)
}
