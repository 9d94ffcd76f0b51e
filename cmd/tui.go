package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RoyalZSoftware/management-cli/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for mgmt.

Views available:
  - Invoices:  Browse invoices with their status and totals
  - Customers: Browse and search customers
  - Time:      Browse time tracking entries and the running task

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - j/k or arrows: Navigate within lists
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services := loadServices()
	if services == nil {
		return
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
		return
	}
}
