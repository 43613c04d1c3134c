// Package cli provides the command-line interface for studyflow.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"studyflow/internal/app"
)

// Command group IDs.
const (
	groupTask    = "task"
	groupSession = "session"
	groupReport  = "report"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for studyflow.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyflow",
		Short: "Personal study time tracker",
		Long: `studyflow tracks time spent on study and productivity tasks.

One session runs at a time; starting a task while another is running
switches to it. Run without arguments to open the interactive dashboard,
or use the subcommands for scripting.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch the interactive dashboard
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSession, Title: "Time Tracking:"},
		&cobra.Group{ID: groupReport, Title: "Reports:"},
	)

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	renameCmd := newRenameCommand(c)
	renameCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	// Time tracking commands
	startCmd := newStartCommand(c)
	startCmd.GroupID = groupSession

	stopCmd := newStopCommand(c)
	stopCmd.GroupID = groupSession

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupSession

	// Report commands
	reportCmd := newReportCommand(c)
	reportCmd.GroupID = groupReport

	// Maintenance commands
	resetCmd := newResetCommand(c)

	// TUI command
	tuiCmd := newTUICommand(c)

	root.AddCommand(
		addCmd,
		renameCmd,
		listCmd,
		showCmd,
		startCmd,
		stopCmd,
		statusCmd,
		reportCmd,
		resetCmd,
		tuiCmd,
	)

	return root
}
