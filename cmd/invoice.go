package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RoyalZSoftware/management-cli/internal/invoice"
	"github.com/RoyalZSoftware/management-cli/internal/service"
)

var (
	invoiceTitle      string
	invoiceCustomerID string
	invoiceDueInDays  int
	invoiceListAfter  string
)

// invoiceCmd represents the invoice parent command
var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Manage invoices",
	Long: `Draft, inspect and finalize invoices.

An invoice is created as a draft, receives line item positions, and is then
finalized. Finalized invoices keep their sequential number forever; a
mistake is handled by canceling the invoice, never by deleting it.`,
}

// invoiceCreateCmd represents the invoice create command
var invoiceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Draft a new invoice",
	Long: `Draft a new invoice for a customer.

The invoice number and id are assigned when the invoice is stored.
The payment term defaults to the configured value (14 days).

Examples:
  mgmt invoice create --title 'Website relaunch' --customer 4f9d...
  mgmt invoice create --title 'Maintenance Q3' --customer 4f9d... --due-in-days 30`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		createInvoice(cmd)
	},
}

// invoiceListCmd represents the invoice list command
var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	Long: `List all invoices in creation order.

Use --after to keep only invoices created after the given date.

Examples:
  mgmt invoice list
  mgmt invoice list --after 2026-01-01`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listInvoices()
	},
}

// invoiceShowCmd represents the invoice show command
var invoiceShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display a full invoice with its totals",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showInvoice(args[0])
	},
}

// invoiceFinalizeCmd represents the invoice finalize command
var invoiceFinalizeCmd = &cobra.Command{
	Use:   "finalize <id>",
	Short: "Finalize an invoice",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		finalizeInvoice(args[0])
	},
}

// invoiceCancelCmd represents the invoice cancel command
var invoiceCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel an invoice",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cancelInvoice(args[0])
	},
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
	invoiceCmd.AddCommand(invoiceCreateCmd)
	invoiceCmd.AddCommand(invoiceListCmd)
	invoiceCmd.AddCommand(invoiceShowCmd)
	invoiceCmd.AddCommand(invoiceFinalizeCmd)
	invoiceCmd.AddCommand(invoiceCancelCmd)

	invoiceCreateCmd.Flags().StringVar(&invoiceTitle, "title", "", "invoice title")
	invoiceCreateCmd.Flags().StringVar(&invoiceCustomerID, "customer", "", "id of the customer to bill")
	invoiceCreateCmd.Flags().IntVar(&invoiceDueInDays, "due-in-days", 0, "payment term in days (default from config)")
	_ = invoiceCreateCmd.MarkFlagRequired("title")
	_ = invoiceCreateCmd.MarkFlagRequired("customer")

	invoiceListCmd.Flags().StringVar(&invoiceListAfter, "after", "", "only invoices created after this date (YYYY-MM-DD)")
}

// ensureInvoice resolves an invoice by id or unique id prefix.
// Reports and exits on failure; returns nil when a stubbed Exit returns.
func ensureInvoice(services *service.Services, id string) *invoice.Invoice {
	inv, err := services.Invoices.Get(id, true)
	if err != nil {
		if errors.Is(err, invoice.ErrAmbiguousReference) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invoice id prefix %q is ambiguous\n", id)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use more characters of the id, or the full id")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No invoice with id %q\n", id)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List invoices with 'mgmt invoice list'")
		}
		deps.Exit(1)
		return nil
	}
	return inv
}

// createInvoice drafts and stores a new invoice
func createInvoice(cmd *cobra.Command) {
	services := loadServices()
	if services == nil {
		return
	}

	cust, err := services.Customers.Get(invoiceCustomerID)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: No customer with id %q\n", invoiceCustomerID)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List customers with 'mgmt customer list'")
		deps.Exit(1)
		return
	}

	dueInDays := invoiceDueInDays
	if !cmd.Flags().Changed("due-in-days") {
		dueInDays = services.Config.DefaultDueInDays
	}

	stored, err := services.Invoices.Store(invoice.New(invoiceTitle, dueInDays, cust, nil))
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save invoice")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the data file is writable: %s\n", services.Store.Path())
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created invoice #%d: %s (%s)\n", stored.Number, stored.Title, shortID(stored.ID))
	_, _ = fmt.Fprintf(deps.Stdout, "Add positions with: mgmt invoice add-position %s\n", shortID(stored.ID))
}

// listInvoices prints all invoices, optionally filtered by creation date
func listInvoices() {
	var opts invoice.ListOptions
	if invoiceListAfter != "" {
		after, err := time.ParseInLocation("2006-01-02", invoiceListAfter, time.Local)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --after date %q\n", invoiceListAfter)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use the format YYYY-MM-DD")
			deps.Exit(1)
			return
		}
		opts.After = &after
	}

	services := loadServices()
	if services == nil {
		return
	}

	invoices := services.Invoices.List(opts)
	if len(invoices) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No invoices")
		return
	}

	for _, inv := range invoices {
		metrics := invoice.CalculateMetrics(inv)
		_, _ = fmt.Fprintf(deps.Stdout, "%s  #%-4d %-10s %-30s %s\n",
			shortID(inv.ID), inv.Number, invoiceStatus(inv), inv.Title,
			formatMoney(metrics.SumWithTax, services.Config.Currency))
	}
}

// showInvoice prints the full invoice, its positions and derived totals
func showInvoice(id string) {
	services := loadServices()
	if services == nil {
		return
	}

	inv := ensureInvoice(services, id)
	if inv == nil {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Invoice #%d: %s\n", inv.Number, inv.Title)
	_, _ = fmt.Fprintf(deps.Stdout, "Id:      %s\n", inv.ID)
	_, _ = fmt.Fprintf(deps.Stdout, "Status:  %s\n", invoiceStatus(inv))
	_, _ = fmt.Fprintf(deps.Stdout, "Created: %s\n", inv.CreatedAt.Format("2006-01-02"))
	_, _ = fmt.Fprintf(deps.Stdout, "Due in:  %d days\n", inv.DueInDays)
	if inv.Customer != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "Billed:  %s <%s>\n", inv.Customer.Name, inv.Customer.Email)
	}

	if len(inv.Positions) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No positions yet")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	for i, pos := range inv.Positions {
		hours := ""
		if pos.Hours != nil {
			hours = fmt.Sprintf("%s h", pos.Hours.StringFixed(2))
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%d) %-40s %8s %12s\n", i, pos.Description, hours,
			formatMoney(pos.Amount, services.Config.Currency))
	}

	metrics := invoice.CalculateMetrics(inv)
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintf(deps.Stdout, "Sum:          %s\n", formatMoney(metrics.Sum, services.Config.Currency))
	_, _ = fmt.Fprintf(deps.Stdout, "Sum with tax: %s\n", formatMoney(metrics.SumWithTax, services.Config.Currency))
	_, _ = fmt.Fprintf(deps.Stdout, "Hours worked: %s\n", metrics.HoursWorked.StringFixed(2))
}

// finalizeInvoice marks an invoice as finalized
func finalizeInvoice(id string) {
	services := loadServices()
	if services == nil {
		return
	}

	inv := ensureInvoice(services, id)
	if inv == nil {
		return
	}

	if err := services.Invoices.Finalize(inv); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to finalize invoice")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Finalized invoice #%d: %s\n", inv.Number, inv.Title)
}

// cancelInvoice marks an invoice as canceled
func cancelInvoice(id string) {
	services := loadServices()
	if services == nil {
		return
	}

	inv := ensureInvoice(services, id)
	if inv == nil {
		return
	}

	if err := services.Invoices.Cancel(inv); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to cancel invoice")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Canceled invoice #%d: %s\n", inv.Number, inv.Title)
}
