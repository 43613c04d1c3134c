package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"studyflow/internal/app"
	"studyflow/internal/format"
	"studyflow/internal/usecase"
)

// newStartCommand creates the start command.
func newStartCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <task>",
		Short: "Start tracking a task",
		Long: `Start a tracking session for a task, matched by ID or exact name.

If another session is running it is stopped first; the switch is a single
atomic update, so there is never a moment with two running sessions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(c, args[0])
			if err != nil {
				return err
			}

			uc := c.StartSessionUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.StartSessionInput{TaskID: task.ID})
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			if out.Stopped != nil {
				_, _ = fmt.Fprintf(stdout, "Stopped previous session (%s)\n", format.Duration(out.Stopped.DurationSeconds))
			}
			_, _ = fmt.Fprintf(stdout, "Tracking %q\n", task.Name)
			return nil
		},
	}
	return cmd
}

// newStopCommand creates the stop command.
func newStopCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.StopSessionUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stopped after %s\n", format.Duration(out.Session.DurationSeconds))
			return nil
		},
	}
	return cmd
}

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.StatusUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			if out.Session == nil {
				_, _ = fmt.Fprintln(stdout, "No session running.")
				return nil
			}

			taskName := out.Session.TaskID
			if out.Task != nil {
				taskName = out.Task.Name
			}
			_, _ = fmt.Fprintf(stdout, "Tracking %q for %s (today: %s)\n",
				taskName, format.Clock(out.ElapsedSeconds), format.Duration(out.TodaySeconds))
			return nil
		},
	}
	return cmd
}
