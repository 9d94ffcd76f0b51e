package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RoyalZSoftware/management-cli/internal/render"
)

var pdfOutputPath string

// invoicePDFCmd represents the invoice pdf command
var invoicePDFCmd = &cobra.Command{
	Use:   "pdf <id>",
	Short: "Render an invoice to a PDF file",
	Long: `Render an invoice to a PDF document.

The sender block on the document is taken from the [business] section of
the config file. Unfinalized invoices are rendered with a DRAFT number.

Examples:
  mgmt invoice pdf 4f9d
  mgmt invoice pdf 4f9d -o /tmp/invoice.pdf`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		renderInvoicePDF(args[0])
	},
}

// invoiceShareCmd represents the invoice share command
var invoiceShareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Print a mailto link for sending an invoice to its customer",
	Long: `Print a mailto link addressed to the invoice's customer.

Open the link with your mail client to compose the message, attaching the
rendered PDF yourself.

Examples:
  mgmt invoice share 4f9d`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		shareInvoice(args[0])
	},
}

func init() {
	invoiceCmd.AddCommand(invoicePDFCmd)
	invoiceCmd.AddCommand(invoiceShareCmd)

	invoicePDFCmd.Flags().StringVarP(&pdfOutputPath, "output", "o", "", "output file (default <invoice-id>.pdf)")
}

// renderInvoicePDF projects an invoice and writes the rendered PDF
func renderInvoicePDF(id string) {
	services := loadServices()
	if services == nil {
		return
	}

	inv := ensureInvoice(services, id)
	if inv == nil {
		return
	}

	doc := render.Project(inv, services.Config.Currency)
	sender := render.Sender{
		Name:        services.Config.Business.Name,
		Email:       services.Config.Business.Email,
		Address:     services.Config.Business.Address,
		BankDetails: services.Config.Business.BankDetails,
	}

	pdf, err := render.RenderPDF(doc, sender)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to render PDF")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	outputPath := pdfOutputPath
	if outputPath == "" {
		outputPath = inv.ID + ".pdf"
	}

	if err := os.WriteFile(outputPath, pdf, 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write PDF file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the target directory is writable: %s\n", outputPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Wrote invoice %s to %s\n", doc.DisplayNumber(), outputPath)
}

// shareInvoice prints the mailto handoff for an invoice
func shareInvoice(id string) {
	services := loadServices()
	if services == nil {
		return
	}

	inv := ensureInvoice(services, id)
	if inv == nil {
		return
	}

	doc := render.Project(inv, services.Config.Currency)
	if doc.CustomerEmail == "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Customer %q has no email address\n", doc.CustomerName)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, render.MailtoURL(doc))
}
