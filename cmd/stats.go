package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/RoyalZSoftware/management-cli/internal/invoice"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show billing and time tracking totals",
	Long: `Show aggregate totals across all invoices and time tracking entries.

Canceled invoices are excluded from the billed totals. Draft totals cover
invoices that have not been finalized yet.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStats()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// showStats aggregates invoice totals and tracked time
func showStats() {
	services := loadServices()
	if services == nil {
		return
	}

	var (
		draftCount, finalizedCount, canceledCount int
		draftSum, billedSum, billedGross          decimal.Decimal
		hoursBilled                               decimal.Decimal
	)

	for _, inv := range services.Invoices.List(invoice.ListOptions{}) {
		metrics := invoice.CalculateMetrics(inv)

		switch {
		case inv.Canceled:
			canceledCount++
		case inv.Finalized:
			finalizedCount++
			billedSum = billedSum.Add(metrics.Sum)
			billedGross = billedGross.Add(metrics.SumWithTax)
			hoursBilled = hoursBilled.Add(metrics.HoursWorked)
		default:
			draftCount++
			draftSum = draftSum.Add(metrics.Sum)
		}
	}

	var trackedMinutes int
	for _, entry := range services.Tracking.Entries() {
		if entry.End != nil {
			trackedMinutes += int(entry.Duration().Minutes())
		}
	}

	currency := services.Config.Currency
	_, _ = fmt.Fprintln(deps.Stdout, "Invoices:")
	_, _ = fmt.Fprintf(deps.Stdout, "  Finalized: %d (%s net, %s gross)\n",
		finalizedCount, formatMoney(billedSum, currency), formatMoney(billedGross, currency))
	_, _ = fmt.Fprintf(deps.Stdout, "  Drafts:    %d (%s net)\n", draftCount, formatMoney(draftSum, currency))
	_, _ = fmt.Fprintf(deps.Stdout, "  Canceled:  %d\n", canceledCount)
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintf(deps.Stdout, "Hours billed:  %s\n", hoursBilled.StringFixed(2))
	_, _ = fmt.Fprintf(deps.Stdout, "Hours tracked: %s\n", formatElapsedTime(minutesToDuration(trackedMinutes)))
}
