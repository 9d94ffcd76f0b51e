package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/RoyalZSoftware/management-cli/internal/timetrack"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <description>",
	Short: "Start tracking time for a task",
	Long: `Start tracking time for a task with the given description.

Only one entry can be tracked at a time; the entry stays open until you
stop it with 'mgmt stop', and survives across terminal sessions.

Examples:
  mgmt start fixing authentication bug
  mgmt start 'Website relaunch: backend work'`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startTracking(args)
	},
}

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running time tracking entry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopTracking()
	},
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the currently tracked task",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showTrackingStatus()
	},
}

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List all time tracking entries",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listTracking()
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)
}

// startTracking opens a new time tracking entry
func startTracking(args []string) {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Description cannot be empty")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: mgmt start <description>")
		deps.Exit(1)
		return
	}

	services := loadServices()
	if services == nil {
		return
	}

	entry, err := services.Tracking.Start(description)
	if err != nil {
		if errors.Is(err, timetrack.ErrAlreadyRunning) {
			active := services.Tracking.Active()
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Time tracking is already running")
			_, _ = fmt.Fprintf(deps.Stderr, "Current task: %s\n", active.Description)
			_, _ = fmt.Fprintf(deps.Stderr, "Started: %s ago\n", formatElapsedTime(time.Since(active.Start)))
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Stop it first with 'mgmt stop'")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to start time tracking")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Started: %s\n", entry.Description)
}

// stopTracking closes the running entry
func stopTracking() {
	services := loadServices()
	if services == nil {
		return
	}

	entry, err := services.Tracking.Stop()
	if err != nil {
		if errors.Is(err, timetrack.ErrNotRunning) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: No time tracking is running")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start one with 'mgmt start <description>'")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to stop time tracking")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Stopped: %s (%s)\n", entry.Description, formatElapsedTime(entry.Duration()))
}

// showTrackingStatus displays the active entry, if any
func showTrackingStatus() {
	services := loadServices()
	if services == nil {
		return
	}

	active := services.Tracking.Active()
	if active == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "No time tracking running")
		_, _ = fmt.Fprintln(deps.Stdout, "Start one with: mgmt start <description>")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Tracking:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", active.Description)
	_, _ = fmt.Fprintf(deps.Stdout, "  Started: %s\n", active.Start.Format("Mon Jan 2 15:04"))
	_, _ = fmt.Fprintf(deps.Stdout, "  Elapsed: %s\n", formatElapsedTime(time.Since(active.Start)))
}

// listTracking prints all entries in storage order
func listTracking() {
	services := loadServices()
	if services == nil {
		return
	}

	entries := services.Tracking.Entries()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No time tracking entries yet")
		return
	}

	for _, entry := range entries {
		state := formatElapsedTime(entry.Duration())
		if entry.End == nil {
			state = "running"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %-40s %s\n", entry.Start.Format("2006-01-02 15:04"), entry.Description, state)
	}
}
