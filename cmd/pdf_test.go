package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/RoyalZSoftware/management-cli/internal/customer"
	"github.com/RoyalZSoftware/management-cli/internal/invoice"
)

func TestRenderInvoicePDF(t *testing.T) {
	env := setupCLITest(t)
	env.config.Business.Name = "Royal Software"
	env.config.Business.BankDetails = "DE02 1203 0000 0000 2020 51"
	cust := seedCustomer(t, env)
	s := env.services(t)
	inv := seedInvoice(t, s, cust, "Project work")
	pos := invoice.NewHourlyPosition("Backend work", decimal.NewFromInt(2), decimal.NewFromInt(90), decimal.NewFromInt(19))
	if err := s.Invoices.AddPosition(inv, pos); err != nil {
		t.Fatalf("seeding position failed: %v", err)
	}

	pdfOutputPath = filepath.Join(t.TempDir(), "invoice.pdf")
	defer func() { pdfOutputPath = "" }()

	renderInvoicePDF(inv.ID)

	if !strings.Contains(env.stdout.String(), "Wrote invoice DRAFT-0 to") {
		t.Errorf("Expected write confirmation with draft number, got: %s", env.stdout.String())
	}

	pdf, err := os.ReadFile(pdfOutputPath)
	if err != nil {
		t.Fatalf("reading rendered PDF failed: %v", err)
	}
	if len(pdf) == 0 || !strings.HasPrefix(string(pdf[:5]), "%PDF-") {
		t.Error("Expected a PDF document on disk")
	}
}

func TestRenderInvoicePDF_NotFound(t *testing.T) {
	env := setupCLITest(t)

	renderInvoicePDF("unknown")

	if !env.exitCalled {
		t.Error("Expected exit to be called for unknown invoice")
	}
}

func TestShareInvoice(t *testing.T) {
	env := setupCLITest(t)
	cust := seedCustomer(t, env)
	inv := seedInvoice(t, env.services(t), cust, "Project work")

	shareInvoice(inv.ID)

	output := env.stdout.String()
	if !strings.HasPrefix(output, "mailto:billing@acme.test?") {
		t.Errorf("Expected mailto link, got: %s", output)
	}
	if !strings.Contains(output, "DRAFT-0") {
		t.Errorf("Expected the draft number in the subject, got: %s", output)
	}
}

func TestShareInvoice_NoEmail(t *testing.T) {
	env := setupCLITest(t)
	s := env.services(t)
	cust, err := s.Customers.Store(customer.New("ACME Inc.", "", ""))
	if err != nil {
		t.Fatalf("seeding customer failed: %v", err)
	}
	inv := seedInvoice(t, s, cust, "Project work")

	shareInvoice(inv.ID)

	if !env.exitCalled {
		t.Error("Expected exit to be called when the customer has no email")
	}
	if !strings.Contains(env.stderr.String(), "has no email address") {
		t.Errorf("Expected email error, got: %s", env.stderr.String())
	}
}
