// Package invoice holds the invoice ledger: invoices, their line item
// positions, sequential numbering, lifecycle flags and derived metrics.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/RoyalZSoftware/management-cli/internal/customer"
)

// Position is a single line item on an invoice. The amount is either a flat
// charge or hours times hourly rate. Positions have no identity of their
// own; they live and die with their parent invoice.
type Position struct {
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount"`
	TaxPercentage decimal.Decimal  `json:"taxPercentage"`
	Hours         *decimal.Decimal `json:"hours,omitempty"`
	HourlyRate    *decimal.Decimal `json:"hourlyRate,omitempty"`
}

// NewFlatPosition creates a position with a direct flat charge.
func NewFlatPosition(description string, amount, taxPercentage decimal.Decimal) Position {
	return Position{
		Description:   description,
		Amount:        amount,
		TaxPercentage: taxPercentage,
	}
}

// NewHourlyPosition creates a position charged as hours times hourly rate.
func NewHourlyPosition(description string, hours, hourlyRate, taxPercentage decimal.Decimal) Position {
	amount := hours.Mul(hourlyRate)
	return Position{
		Description:   description,
		Amount:        amount,
		TaxPercentage: taxPercentage,
		Hours:         &hours,
		HourlyRate:    &hourlyRate,
	}
}

// Invoice represents a single invoice. An invoice is created in memory
// without id and number; both are assigned when it is first stored.
// The customer field is a resolved registry entry in memory, but is
// persisted as an id-only reference.
type Invoice struct {
	ID        string             `json:"id,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	Title     string             `json:"title"`
	DueInDays int                `json:"dueInDays"`
	Number    int                `json:"number"`
	Customer  *customer.Customer `json:"-"`
	Positions []Position         `json:"positions"`
	Finalized bool               `json:"finalized"`
	Canceled  bool               `json:"canceled"`
	Discount  *decimal.Decimal   `json:"discount,omitempty"`
	PaidAt    *time.Time         `json:"paidAt,omitempty"`
}

// New creates an unpersisted invoice for the given customer.
func New(title string, dueInDays int, cust *customer.Customer, positions []Position) *Invoice {
	return &Invoice{
		CreatedAt: time.Now(),
		Title:     title,
		DueInDays: dueInDays,
		Customer:  cust,
		Positions: positions,
	}
}
