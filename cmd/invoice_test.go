package cmd

import (
	"strings"
	"testing"

	"github.com/RoyalZSoftware/management-cli/internal/customer"
	"github.com/RoyalZSoftware/management-cli/internal/invoice"
	"github.com/RoyalZSoftware/management-cli/internal/service"
	"github.com/shopspring/decimal"
)

// seedCustomer stores a customer directly in the test data document.
func seedCustomer(t *testing.T, env *testEnv) *customer.Customer {
	t.Helper()

	cust, err := env.services(t).Customers.Store(customer.New("ACME Inc.", "billing@acme.test", "Industriestrasse 48"))
	if err != nil {
		t.Fatalf("seeding customer failed: %v", err)
	}
	return cust
}

// seedInvoice stores a draft invoice for the given customer.
func seedInvoice(t *testing.T, s *service.Services, cust *customer.Customer, title string) *invoice.Invoice {
	t.Helper()

	inv, err := s.Invoices.Store(invoice.New(title, 14, cust, nil))
	if err != nil {
		t.Fatalf("seeding invoice failed: %v", err)
	}
	return inv
}

func TestCreateInvoice_Success(t *testing.T) {
	env := setupCLITest(t)
	cust := seedCustomer(t, env)

	invoiceTitle = "Website relaunch"
	invoiceCustomerID = cust.ID
	defer func() { invoiceTitle, invoiceCustomerID = "", "" }()

	createInvoice(invoiceCreateCmd)

	output := env.stdout.String()
	if !strings.Contains(output, "Created invoice #0: Website relaunch") {
		t.Errorf("Expected create confirmation with number 0, got: %s", output)
	}

	invoices := env.services(t).Invoices.List(invoice.ListOptions{})
	if len(invoices) != 1 {
		t.Fatalf("Expected 1 persisted invoice, got %d", len(invoices))
	}
	// The due-in-days flag was not set, so the configured default applies.
	if invoices[0].DueInDays != env.config.DefaultDueInDays {
		t.Errorf("Expected due in %d days, got %d", env.config.DefaultDueInDays, invoices[0].DueInDays)
	}
	if invoices[0].Customer == nil || invoices[0].Customer.ID != cust.ID {
		t.Error("Expected the invoice to reference the seeded customer")
	}
}

func TestCreateInvoice_UnknownCustomer(t *testing.T) {
	env := setupCLITest(t)

	invoiceTitle = "Website relaunch"
	invoiceCustomerID = "unknown"
	defer func() { invoiceTitle, invoiceCustomerID = "", "" }()

	createInvoice(invoiceCreateCmd)

	if !env.exitCalled {
		t.Error("Expected exit to be called for unknown customer")
	}
	if !strings.Contains(env.stderr.String(), `No customer with id "unknown"`) {
		t.Errorf("Expected customer error, got: %s", env.stderr.String())
	}
}

func TestListInvoices(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		env := setupCLITest(t)

		listInvoices()

		if !strings.Contains(env.stdout.String(), "No invoices") {
			t.Errorf("Expected empty message, got: %s", env.stdout.String())
		}
	})

	t.Run("with invoices", func(t *testing.T) {
		env := setupCLITest(t)
		cust := seedCustomer(t, env)
		s := env.services(t)
		seedInvoice(t, s, cust, "First invoice")
		seedInvoice(t, s, cust, "Second invoice")

		listInvoices()

		output := env.stdout.String()
		if !strings.Contains(output, "First invoice") || !strings.Contains(output, "Second invoice") {
			t.Errorf("Expected both invoices listed, got: %s", output)
		}
		if !strings.Contains(output, "draft") {
			t.Errorf("Expected draft status, got: %s", output)
		}
	})

	t.Run("invalid after date", func(t *testing.T) {
		env := setupCLITest(t)

		invoiceListAfter = "01.01.2026"
		defer func() { invoiceListAfter = "" }()

		listInvoices()

		if !env.exitCalled {
			t.Error("Expected exit to be called for invalid date")
		}
		if !strings.Contains(env.stderr.String(), "Invalid --after date") {
			t.Errorf("Expected date error, got: %s", env.stderr.String())
		}
	})
}

func TestShowInvoice(t *testing.T) {
	env := setupCLITest(t)
	cust := seedCustomer(t, env)
	s := env.services(t)
	inv := seedInvoice(t, s, cust, "Project work")
	pos := invoice.NewHourlyPosition("Backend work", decimal.NewFromInt(2), decimal.NewFromInt(90), decimal.NewFromInt(19))
	if err := s.Invoices.AddPosition(inv, pos); err != nil {
		t.Fatalf("seeding position failed: %v", err)
	}

	showInvoice(inv.ID)

	output := env.stdout.String()
	if !strings.Contains(output, "Invoice #0: Project work") {
		t.Errorf("Expected invoice header, got: %s", output)
	}
	if !strings.Contains(output, "ACME Inc. <billing@acme.test>") {
		t.Errorf("Expected billed customer, got: %s", output)
	}
	if !strings.Contains(output, "Backend work") {
		t.Errorf("Expected position, got: %s", output)
	}
	if !strings.Contains(output, "Sum:          180.00 EUR") {
		t.Errorf("Expected net sum, got: %s", output)
	}
	if !strings.Contains(output, "Sum with tax: 214.20 EUR") {
		t.Errorf("Expected gross sum, got: %s", output)
	}
	if !strings.Contains(output, "Hours worked: 2.00") {
		t.Errorf("Expected hours worked, got: %s", output)
	}
}

func TestShowInvoice_GracefulPrefix(t *testing.T) {
	env := setupCLITest(t)
	cust := seedCustomer(t, env)
	inv := seedInvoice(t, env.services(t), cust, "Project work")

	showInvoice(inv.ID[:8])

	if !strings.Contains(env.stdout.String(), "Invoice #0: Project work") {
		t.Errorf("Expected prefix lookup to resolve, got: %s", env.stdout.String())
	}
}

func TestShowInvoice_NotFound(t *testing.T) {
	env := setupCLITest(t)

	showInvoice("unknown")

	if !env.exitCalled {
		t.Error("Expected exit to be called for unknown invoice")
	}
	if !strings.Contains(env.stderr.String(), `No invoice with id "unknown"`) {
		t.Errorf("Expected not found error, got: %s", env.stderr.String())
	}
}

func TestShowInvoice_AmbiguousPrefix(t *testing.T) {
	env := setupCLITest(t)
	cust := seedCustomer(t, env)
	s := env.services(t)
	seedInvoice(t, s, cust, "First")
	seedInvoice(t, s, cust, "Second")

	// The empty prefix matches every invoice.
	showInvoice("")

	if !env.exitCalled {
		t.Error("Expected exit to be called for ambiguous prefix")
	}
	if !strings.Contains(env.stderr.String(), "ambiguous") {
		t.Errorf("Expected ambiguity error, got: %s", env.stderr.String())
	}
}

func TestFinalizeInvoice(t *testing.T) {
	env := setupCLITest(t)
	cust := seedCustomer(t, env)
	inv := seedInvoice(t, env.services(t), cust, "Project work")

	finalizeInvoice(inv.ID)

	if !strings.Contains(env.stdout.String(), "Finalized invoice #0") {
		t.Errorf("Expected finalize confirmation, got: %s", env.stdout.String())
	}

	reloaded, err := env.services(t).Invoices.Get(inv.ID, false)
	if err != nil {
		t.Fatalf("reloading invoice failed: %v", err)
	}
	if !reloaded.Finalized {
		t.Error("Expected the finalized flag to be persisted")
	}
}

func TestCancelInvoice(t *testing.T) {
	env := setupCLITest(t)
	cust := seedCustomer(t, env)
	inv := seedInvoice(t, env.services(t), cust, "Project work")

	cancelInvoice(inv.ID)

	if !strings.Contains(env.stdout.String(), "Canceled invoice #0") {
		t.Errorf("Expected cancel confirmation, got: %s", env.stdout.String())
	}

	reloaded, err := env.services(t).Invoices.Get(inv.ID, false)
	if err != nil {
		t.Fatalf("reloading invoice failed: %v", err)
	}
	if !reloaded.Canceled {
		t.Error("Expected the canceled flag to be persisted")
	}
}
