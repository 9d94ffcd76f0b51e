package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RoyalZSoftware/management-cli/internal/timetrack"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export time tracking entries to various formats",
	Long: `Export time tracking entries for programmatic use, backup, or billing.

Available formats:
  json    Export entries as JSON
  csv     Export entries as CSV

Examples:
  mgmt export json                Export all entries as JSON
  mgmt export json > backup.json  Export to file
  mgmt export csv > timesheet.csv Export to file`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export time tracking entries as JSON",
	Long: `Export all time tracking entries to JSON format.

Output includes metadata (export timestamp, total entries) and an array of
entry objects.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON()
	},
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export time tracking entries as CSV",
	Long: `Export all time tracking entries to CSV format.

Output is in standard CSV format with headers. Running entries are exported
with an empty end column.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)
}

// exportJSON writes all time tracking entries as a JSON document
func exportJSON() {
	services := loadServices()
	if services == nil {
		return
	}

	output := struct {
		Metadata struct {
			ExportTimestamp time.Time `json:"export_timestamp"`
			TotalEntries    int       `json:"total_entries"`
		} `json:"metadata"`
		Entries []*timetrack.Entry `json:"entries"`
	}{}

	entries := services.Tracking.Entries()
	output.Metadata.ExportTimestamp = time.Now()
	output.Metadata.TotalEntries = len(entries)
	output.Entries = entries

	encoder := json.NewEncoder(deps.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to encode entries as JSON")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}

// exportCSV writes all time tracking entries as CSV
func exportCSV() {
	services := loadServices()
	if services == nil {
		return
	}

	writer := csv.NewWriter(deps.Stdout)
	if err := writer.Write([]string{"id", "description", "start", "end", "minutes"}); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write CSV header")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	for _, entry := range services.Tracking.Entries() {
		end := ""
		minutes := ""
		if entry.End != nil {
			end = entry.End.Format(time.RFC3339)
			minutes = fmt.Sprintf("%d", int(entry.Duration().Minutes()))
		}

		row := []string{
			entry.ID,
			entry.Description,
			entry.Start.Format(time.RFC3339),
			end,
			minutes,
		}
		if err := writer.Write(row); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write CSV row")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to flush CSV output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}
