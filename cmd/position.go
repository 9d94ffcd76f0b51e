package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/RoyalZSoftware/management-cli/internal/invoice"
)

var (
	positionDescription string
	positionHours       string
	positionRate        string
	positionAmount      string
	positionTax         string
)

// addPositionCmd represents the invoice add-position command
var addPositionCmd = &cobra.Command{
	Use:   "add-position <invoice>",
	Short: "Add a line item to an invoice",
	Long: `Add a line item position to an invoice.

A position is either billed by the hour (--hours, with --rate falling back
to the configured hourly rate) or as a flat charge (--amount). The tax
percentage falls back to the configured default.

Examples:
  mgmt invoice add-position 4f9d --description 'Backend work' --hours 12.5
  mgmt invoice add-position 4f9d --description 'Consulting' --hours 3 --rate 120
  mgmt invoice add-position 4f9d --description 'Hosting flat fee' --amount 49.90 --tax 0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addPosition(args[0])
	},
}

// removePositionCmd represents the invoice remove-position command
var removePositionCmd = &cobra.Command{
	Use:   "remove-position <invoice> <index>",
	Short: "Remove a line item from an invoice",
	Long: `Remove the position at the given index from an invoice.

Indexes are zero-based and shown by 'mgmt invoice show'.

Examples:
  mgmt invoice remove-position 4f9d 0`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		removePosition(args[0], args[1])
	},
}

func init() {
	invoiceCmd.AddCommand(addPositionCmd)
	invoiceCmd.AddCommand(removePositionCmd)

	addPositionCmd.Flags().StringVar(&positionDescription, "description", "", "position description")
	addPositionCmd.Flags().StringVar(&positionHours, "hours", "", "billed hours")
	addPositionCmd.Flags().StringVar(&positionRate, "rate", "", "hourly rate (default from config)")
	addPositionCmd.Flags().StringVar(&positionAmount, "amount", "", "flat charge, used when no hours are given")
	addPositionCmd.Flags().StringVar(&positionTax, "tax", "", "tax percentage (default from config)")
	_ = addPositionCmd.MarkFlagRequired("description")
}

// parseDecimalFlag parses a decimal flag value, reporting a consistent error
func parseDecimalFlag(name, value string) (decimal.Decimal, bool) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --%s value %q\n", name, value)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use a plain decimal number like 12.5")
		deps.Exit(1)
		return decimal.Decimal{}, false
	}
	return parsed, true
}

// addPosition builds a position from the flags and appends it to an invoice
func addPosition(id string) {
	services := loadServices()
	if services == nil {
		return
	}

	inv := ensureInvoice(services, id)
	if inv == nil {
		return
	}

	tax := decimal.NewFromFloat(services.Config.DefaultTaxPercentage)
	if positionTax != "" {
		parsed, ok := parseDecimalFlag("tax", positionTax)
		if !ok {
			return
		}
		tax = parsed
	}

	var pos invoice.Position
	switch {
	case positionHours != "":
		hours, ok := parseDecimalFlag("hours", positionHours)
		if !ok {
			return
		}

		rate := decimal.NewFromFloat(services.Config.DefaultHourlyRate)
		if positionRate != "" {
			parsed, ok := parseDecimalFlag("rate", positionRate)
			if !ok {
				return
			}
			rate = parsed
		}

		pos = invoice.NewHourlyPosition(positionDescription, hours, rate, tax)

	case positionAmount != "":
		amount, ok := parseDecimalFlag("amount", positionAmount)
		if !ok {
			return
		}
		pos = invoice.NewFlatPosition(positionDescription, amount, tax)

	default:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: A position needs either --hours or --amount")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Bill by the hour with --hours, or charge a flat fee with --amount")
		deps.Exit(1)
		return
	}

	if err := services.Invoices.AddPosition(inv, pos); err != nil {
		if errors.Is(err, invoice.ErrFinalized) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invoice #%d is finalized\n", inv.Number)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Finalized invoices are locked (lock_finalized in config)")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save position")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added position to invoice #%d: %s (%s)\n",
		inv.Number, pos.Description, formatMoney(pos.Amount, services.Config.Currency))
}

// removePosition removes a position from an invoice by index
func removePosition(id, indexArg string) {
	index, err := strconv.Atoi(indexArg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid position index %q\n", indexArg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use the zero-based index shown by 'mgmt invoice show'")
		deps.Exit(1)
		return
	}

	services := loadServices()
	if services == nil {
		return
	}

	inv := ensureInvoice(services, id)
	if inv == nil {
		return
	}

	removed := invoice.Position{}
	if index >= 0 && index < len(inv.Positions) {
		removed = inv.Positions[index]
	}

	if err := services.Invoices.RemovePosition(inv, index); err != nil {
		switch {
		case errors.Is(err, invoice.ErrIndexOutOfRange):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invoice #%d has no position %d\n", inv.Number, index)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List positions with 'mgmt invoice show'")
		case errors.Is(err, invoice.ErrFinalized):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invoice #%d is finalized\n", inv.Number)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Finalized invoices are locked (lock_finalized in config)")
		default:
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to remove position")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed position %d from invoice #%d: %s\n", index, inv.Number, removed.Description)
}
