// Package render exposes the read-only invoice data consumed by the PDF
// renderer and the mail share handoff.
package render

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RoyalZSoftware/management-cli/internal/invoice"
)

// Line is the projection of a single invoice position.
type Line struct {
	Description   string
	Hours         *decimal.Decimal
	PricePerHour  *decimal.Decimal
	Amount        decimal.Decimal
	TaxPercentage decimal.Decimal
}

// Document is the read-only projection of an invoice handed to a renderer.
type Document struct {
	Number    int
	Title     string
	CreatedAt time.Time
	DueInDays int
	Draft     bool
	Currency  string

	CustomerName    string
	CustomerEmail   string
	CustomerAddress string

	Lines       []Line
	Sum         decimal.Decimal
	SumWithTax  decimal.Decimal
	HoursWorked decimal.Decimal
}

// Project builds the rendering projection for an invoice.
func Project(inv *invoice.Invoice, currency string) Document {
	metrics := invoice.CalculateMetrics(inv)

	doc := Document{
		Number:      inv.Number,
		Title:       inv.Title,
		CreatedAt:   inv.CreatedAt,
		DueInDays:   inv.DueInDays,
		Draft:       !inv.Finalized,
		Currency:    currency,
		Sum:         metrics.Sum,
		SumWithTax:  metrics.SumWithTax,
		HoursWorked: metrics.HoursWorked,
	}

	if inv.Customer != nil {
		doc.CustomerName = inv.Customer.Name
		doc.CustomerEmail = inv.Customer.Email
		doc.CustomerAddress = inv.Customer.Address
	}

	for _, pos := range inv.Positions {
		line := Line{
			Description:   pos.Description,
			Hours:         pos.Hours,
			PricePerHour:  pos.HourlyRate,
			Amount:        pos.Amount,
			TaxPercentage: pos.TaxPercentage,
		}
		if line.PricePerHour == nil && pos.Hours != nil && !pos.Hours.IsZero() {
			rate := pos.Amount.Div(*pos.Hours)
			line.PricePerHour = &rate
		}
		doc.Lines = append(doc.Lines, line)
	}

	return doc
}

// DisplayNumber returns the invoice number as shown on documents.
// Unfinalized invoices are marked as drafts.
func (d Document) DisplayNumber() string {
	if d.Draft {
		return fmt.Sprintf("DRAFT-%d", d.Number)
	}
	return fmt.Sprintf("%d", d.Number)
}

// DueDate returns the payment due date derived from creation date and term.
func (d Document) DueDate() time.Time {
	return d.CreatedAt.AddDate(0, 0, d.DueInDays)
}

// MailtoURL returns the mailto handoff for sharing the invoice with its
// customer. The caller hands this to an external mail composer.
func MailtoURL(d Document) string {
	params := url.Values{}
	params.Set("subject", fmt.Sprintf("Invoice %s: %s", d.DisplayNumber(), d.Title))

	// url.Values encodes spaces as '+', which mail clients do not decode
	query := strings.ReplaceAll(params.Encode(), "+", "%20")
	return "mailto:" + d.CustomerEmail + "?" + query
}
