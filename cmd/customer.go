package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RoyalZSoftware/management-cli/internal/customer"
)

var (
	customerName    string
	customerEmail   string
	customerAddress string
)

// customerCmd represents the customer parent command
var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
	Long: `Manage the customers invoices are written against.

Customers are immutable once stored; register a new customer instead of
editing an existing one.`,
}

// customerAddCmd represents the customer add command
var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new customer",
	Long: `Register a new customer with name, email and address.

Examples:
  mgmt customer add --name 'ACME Inc.'
  mgmt customer add --name 'ACME Inc.' --email billing@acme.test --address 'Industriestrasse 48, 82194 Groebenzell'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addCustomer()
	},
}

// customerListCmd represents the customer list command
var customerListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List or search customers",
	Long: `List all customers, or only those matching a search query.

The query matches case-insensitively against name, email and address.

Examples:
  mgmt customer list
  mgmt customer list acme`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listCustomers(strings.Join(args, " "))
	},
}

// customerShowCmd represents the customer show command
var customerShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display a single customer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showCustomer(args[0])
	},
}

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerShowCmd)

	customerAddCmd.Flags().StringVar(&customerName, "name", "", "customer name")
	customerAddCmd.Flags().StringVar(&customerEmail, "email", "", "customer email address")
	customerAddCmd.Flags().StringVar(&customerAddress, "address", "", "customer postal address")
	_ = customerAddCmd.MarkFlagRequired("name")
}

// addCustomer registers and persists a new customer
func addCustomer() {
	name := strings.TrimSpace(customerName)
	if name == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Customer name cannot be empty")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: mgmt customer add --name '<name>'")
		deps.Exit(1)
		return
	}

	services := loadServices()
	if services == nil {
		return
	}

	stored, err := services.Customers.Store(customer.New(name, customerEmail, customerAddress))
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save customer")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the data file is writable: %s\n", services.Store.Path())
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added customer: %s (%s)\n", stored.Name, shortID(stored.ID))
}

// listCustomers prints customers matching the query, or all of them
func listCustomers(query string) {
	services := loadServices()
	if services == nil {
		return
	}

	customers := services.Customers.Search(query)
	if len(customers) == 0 {
		if query == "" {
			_, _ = fmt.Fprintln(deps.Stdout, "No customers yet")
			_, _ = fmt.Fprintln(deps.Stdout, "Register one with: mgmt customer add --name '<name>'")
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "No customers matching %q\n", query)
		}
		return
	}

	for _, c := range customers {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %-30s %s\n", c.ID, c.Name, c.Email)
	}
}

// showCustomer prints the full record of a single customer
func showCustomer(id string) {
	services := loadServices()
	if services == nil {
		return
	}

	c, err := services.Customers.Get(id)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: No customer with id %q\n", id)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List customers with 'mgmt customer list'")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Id:      %s\n", c.ID)
	_, _ = fmt.Fprintf(deps.Stdout, "Name:    %s\n", c.Name)
	_, _ = fmt.Fprintf(deps.Stdout, "Email:   %s\n", c.Email)
	_, _ = fmt.Fprintf(deps.Stdout, "Address: %s\n", c.Address)
	_, _ = fmt.Fprintf(deps.Stdout, "Created: %s\n", c.CreatedAt.Format("2006-01-02 15:04"))
}
