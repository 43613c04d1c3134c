package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"studyflow/internal/app"
	"studyflow/internal/domain"
	"studyflow/internal/format"
	"studyflow/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new task",
		Long: `Add a new task to track time against.

The category is matched by ID or name. Default: General.

Examples:
  studyflow add "Linear Algebra"
  studyflow add "Inbox Zero" --category Priority`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := resolveCategory(c, category)
			if err != nil {
				return err
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Name:       args[0],
				CategoryID: cat.ID,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %q (%s) in %s\n", out.Task.Name, out.Task.ID, cat.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "General", "Category ID or name")

	return cmd
}

// newRenameCommand creates the rename command.
func newRenameCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <task> <new-name>",
		Short: "Rename a task",
		Long:  `Rename a task. The task is matched by ID or exact name.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(c, args[0])
			if err != nil {
				return err
			}

			uc := c.RenameTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RenameTaskInput{
				TaskID:  task.ID,
				NewName: args[1],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", task.Name, out.Task.Name)
			return nil
		},
	}
	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks with tracked time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTODAY\tTOTAL\t")
			for _, row := range out.Rows {
				name := row.Task.Name
				if row.Active {
					name += " *"
				}
				catName := "-"
				if row.Category != nil {
					catName = row.Category.Name
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
					row.Task.ID, name, catName,
					format.Duration(row.TodaySeconds), format.Duration(row.TotalSeconds))
			}
			return w.Flush()
		},
	}
	return cmd
}

// newShowCommand creates the show command for the task detail view.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task>",
		Short: "Show a task's daily history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(c, args[0])
			if err != nil {
				return err
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: task.ID})
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(stdout, "%s (%s)\n", out.Task.Name, out.Task.ID)
			if out.Category != nil {
				_, _ = fmt.Fprintf(stdout, "Category: %s\n", out.Category.Name)
			}
			status := "idle"
			if out.Active {
				status = "tracking"
			}
			_, _ = fmt.Fprintf(stdout, "Status:   %s\n", status)
			_, _ = fmt.Fprintf(stdout, "Today:    %s\n", format.Duration(out.TodaySeconds))
			_, _ = fmt.Fprintf(stdout, "Total:    %s\n", format.Duration(out.TotalSeconds))

			if len(out.History) == 0 {
				_, _ = fmt.Fprintln(stdout, "\nNo sessions yet.")
				return nil
			}

			_, _ = fmt.Fprintln(stdout)
			w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			for _, g := range out.History {
				day := time.UnixMilli(g.Date).Format("Mon 2006-01-02")
				if g.IsToday {
					day = "Today"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t\n", day, format.Duration(g.DurationSeconds))
			}
			return w.Flush()
		},
	}
	return cmd
}

// resolveTask matches a task by ID or exact name (case-insensitive).
func resolveTask(c *app.Container, ref string) (*domain.Task, error) {
	data, err := c.Store.Load()
	if err != nil {
		return nil, err
	}

	if t := data.FindTask(ref); t != nil {
		return t, nil
	}

	var matches []*domain.Task
	for i := range data.Tasks {
		if strings.EqualFold(data.Tasks[i].Name, ref) {
			matches = append(matches, &data.Tasks[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("task %q: %w", ref, domain.ErrTaskNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("task name %q is ambiguous, use the ID", ref)
	}
}

// resolveCategory matches a category by ID or exact name (case-insensitive).
func resolveCategory(c *app.Container, ref string) (*domain.Category, error) {
	data, err := c.Store.Load()
	if err != nil {
		return nil, err
	}

	if cat := data.FindCategory(ref); cat != nil {
		return cat, nil
	}
	for i := range data.Categories {
		if strings.EqualFold(data.Categories[i].Name, ref) {
			return &data.Categories[i], nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", ref, domain.ErrCategoryNotFound)
}
