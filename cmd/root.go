package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "mgmt",
	Short: "Invoicing and time tracking for a single small business",
	Long: `mgmt is a CLI tool for managing customers, invoices and billable hours.

Usage:
  mgmt customer add --name 'ACME Inc.'          Register a new customer
  mgmt customer list [query]                    List or search customers
  mgmt invoice create --title X --customer ID   Draft a new invoice
  mgmt invoice add-position <invoice>           Add a line item
  mgmt invoice finalize <invoice>               Finalize an invoice
  mgmt invoice pdf <invoice>                    Render an invoice to PDF
  mgmt start <description>                      Start tracking time
  mgmt stop                                     Stop tracking time
  mgmt log                                      List tracked time entries
  mgmt stats                                    Show billing totals
  mgmt tui                                      Launch the interactive UI

All state lives in a single JSON document in your user config directory.
Invoice ids may be abbreviated to a unique prefix wherever an id is expected.`,
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"mgmt version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
