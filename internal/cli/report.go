package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"studyflow/internal/app"
	"studyflow/internal/domain"
	"studyflow/internal/format"
	"studyflow/internal/usecase"
)

const (
	chartBarWidth     = 40
	breakdownBarWidth = 24
)

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// newReportCommand creates the report command.
func newReportCommand(c *app.Container) *cobra.Command {
	var window string
	var taskRef string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the time chart and task breakdown",
		Long: `Show tracked hours per day over a window, plus a ranked breakdown
of where the time went.

Examples:
  studyflow report
  studyflow report --window month
  studyflow report --task "Linear Algebra"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if window == "" && c.AppConfig != nil {
				window = c.AppConfig.Chart.DefaultWindow
			}
			days, err := domain.WindowDays(window)
			if err != nil {
				return fmt.Errorf("window %q: %w", window, err)
			}

			var taskFilter string
			if taskRef != "" {
				task, err := resolveTask(c, taskRef)
				if err != nil {
					return err
				}
				taskFilter = task.ID
			}

			uc := c.ReportUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ReportInput{
				WindowDays: days,
				TaskFilter: taskFilter,
			})
			if err != nil {
				return err
			}

			renderReport(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&window, "window", "", `Window size: "week" or "month" (default from config)`)
	cmd.Flags().StringVar(&taskRef, "task", "", "Restrict the report to one task (ID or name)")

	return cmd
}

func renderReport(cmd *cobra.Command, out *usecase.ReportOutput) {
	stdout := cmd.OutOrStdout()

	taskNames := make(map[string]string, len(out.Tasks))
	taskColors := make(map[string]string, len(out.Tasks))
	for _, t := range out.Tasks {
		taskNames[t.ID] = t.Name
		for _, cat := range out.Categories {
			if cat.ID == t.CategoryID {
				taskColors[t.ID] = cat.Color
			}
		}
	}

	// Daily chart
	var maxHours float64
	totals := make([]float64, len(out.Series))
	for i, b := range out.Series {
		for _, h := range b.Hours {
			totals[i] += h
		}
		if totals[i] > maxHours {
			maxHours = totals[i]
		}
	}

	_, _ = fmt.Fprintf(stdout, "Last %d days\n\n", out.WindowDays)
	labelWidth := 0
	for _, b := range out.Series {
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}
	for i, b := range out.Series {
		bar := renderBar(totals[i], maxHours, chartBarWidth)
		amount := format.Hours(totals[i])
		if totals[i] == 0 {
			amount = dimStyle.Render(amount)
		}
		_, _ = fmt.Fprintf(stdout, "%-*s  %s %s\n", labelWidth, b.Label, bar, amount)
	}

	// Ranked breakdown
	if len(out.Breakdown) == 0 {
		_, _ = fmt.Fprintln(stdout, "\nNo time tracked in this window.")
		return
	}

	_, _ = fmt.Fprintln(stdout, "\nBreakdown")
	top := out.Breakdown[0].TotalSeconds
	nameWidth := 0
	for _, item := range out.Breakdown {
		name := taskNames[item.TaskID]
		if name == "" {
			name = item.TaskID
		}
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}
	for _, item := range out.Breakdown {
		name := taskNames[item.TaskID]
		if name == "" {
			name = item.TaskID // deleted task, keep its time visible
		}
		bar := renderBar(float64(item.TotalSeconds), float64(top), breakdownBarWidth)
		if color := taskColors[item.TaskID]; color != "" {
			bar = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(bar)
		}
		_, _ = fmt.Fprintf(stdout, "%-*s  %s %s\n", nameWidth, name, bar, format.Duration(item.TotalSeconds))
	}
}

// renderBar renders a value as a bar scaled against max.
func renderBar(value, max float64, width int) string {
	if max <= 0 {
		return strings.Repeat(" ", width)
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	if value > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat(" ", width-filled)
}
