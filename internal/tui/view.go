package tui

import (
	"fmt"
	"strings"

	"studyflow/internal/format"
)

const chartWidth = 30

// View renders the dashboard.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("studyflow"))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(m.taskListView())
	b.WriteString(m.chartView())

	if m.mode == ModeAdd || m.mode == ModeRename {
		prompt := "New task:"
		if m.mode == ModeRename {
			prompt = "Rename to:"
		}
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render(prompt))
		b.WriteString(" ")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))

	return m.styles.App.Render(b.String())
}

// statusLine renders the running session, or an idle marker.
func (m *Model) statusLine() string {
	if m.status == nil || m.status.Session == nil {
		return m.styles.StatusIdle.Render("No session running")
	}

	name := m.status.Session.TaskID
	if m.status.Task != nil {
		name = m.status.Task.Name
	}
	return fmt.Sprintf("%s %s  %s",
		m.styles.StatusTracking.Render("● "+name),
		m.styles.StatusClock.Render(format.Clock(m.status.ElapsedSeconds)),
		m.styles.TaskMeta.Render("today "+format.Duration(m.status.TodaySeconds)),
	)
}

// taskListView renders the task list with cursor and per-task stats.
func (m *Model) taskListView() string {
	if len(m.rows) == 0 {
		return m.styles.TaskMeta.Render("No tasks. Press n to add one.") + "\n"
	}

	var b strings.Builder
	for i, row := range m.rows {
		cursor := "  "
		style := m.styles.TaskNormal
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
			style = m.styles.TaskSelected
		}

		name := row.Task.Name
		if row.Active {
			name = m.styles.TaskActive.Render(name + " ●")
		} else {
			name = style.Render(name)
		}

		meta := fmt.Sprintf("today %s · total %s",
			format.Duration(row.TodaySeconds),
			format.Duration(row.TotalSeconds))

		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, m.styles.TaskMeta.Render(meta)))
	}
	return b.String()
}

// chartView renders the windowed daily chart and breakdown.
func (m *Model) chartView() string {
	if m.report == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.ChartTitle.Render(fmt.Sprintf("Last %d days", m.report.WindowDays)))
	b.WriteString("\n")

	totals := make([]float64, len(m.report.Series))
	var maxHours float64
	for i, bucket := range m.report.Series {
		for _, h := range bucket.Hours {
			totals[i] += h
		}
		if totals[i] > maxHours {
			maxHours = totals[i]
		}
	}

	// The month window is too tall for a dashboard pane; show the last 7
	// buckets and leave the full chart to the report command.
	first := 0
	if len(m.report.Series) > 7 {
		first = len(m.report.Series) - 7
	}
	for i := first; i < len(m.report.Series); i++ {
		bar := renderBar(totals[i], maxHours, chartWidth)
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			m.styles.ChartLabel.Render(fmt.Sprintf("%9s", m.report.Series[i].Label)),
			m.styles.ChartBar.Render(bar),
			m.styles.TaskMeta.Render(format.Hours(totals[i])),
		))
	}

	return b.String()
}

// renderBar renders a value as a bar scaled against max.
func renderBar(value, max float64, width int) string {
	if max <= 0 {
		return strings.Repeat("·", width)
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	if value > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}
