package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RoyalZSoftware/management-cli/internal/invoice"
)

// formatMoney formats a monetary amount with two fractional digits and the
// configured currency code.
func formatMoney(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}

// formatElapsedTime formats a duration as a human-readable string
// Examples: "30m", "2h", "1h 30m"
func formatElapsedTime(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// minutesToDuration converts whole minutes back into a time.Duration.
func minutesToDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}

// shortID abbreviates an id for list output. Full ids are accepted
// everywhere, but the first characters are enough for graceful lookup.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// invoiceStatus describes the lifecycle state of an invoice for display.
func invoiceStatus(inv *invoice.Invoice) string {
	switch {
	case inv.Canceled:
		return "canceled"
	case inv.Finalized:
		return "finalized"
	default:
		return "draft"
	}
}
