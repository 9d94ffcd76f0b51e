package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/RoyalZSoftware/management-cli/internal/store"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore the data file from a backup",
	Long: `Restore the data file from a rotating backup.

A backup of the whole data document is taken before every rewrite. By
default the most recent backup (.bak.1) is restored; optionally specify a
backup number (1-3).

Examples:
  mgmt restore       Restore from most recent backup
  mgmt restore 2     Restore from backup #2`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		restoreFromBackup(args)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

// restoreFromBackup handles the restore command logic
func restoreFromBackup(args []string) {
	dataPath, err := deps.DataPath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to get data file path: %v\n", err)
		deps.Exit(1)
		return
	}

	backups := store.ListBackups(dataPath)
	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}

	backupNum := 1
	if len(args) == 1 {
		backupNum, err = strconv.Atoi(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number %q\n", args[0])
			_, _ = fmt.Fprintf(deps.Stderr, "Hint: Use a number between 1 and %d\n", store.MaxBackupCount)
			deps.Exit(1)
			return
		}
	}

	if err := store.RestoreBackup(dataPath, backupNum); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to restore backup")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored data file from backup #%d\n", backupNum)
	_, _ = fmt.Fprintln(deps.Stdout, "The previous state was backed up before restoring")
}
