package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the dashboard.
var Colors = struct {
	Primary  lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Selected lipgloss.Color
}{
	Primary:  lipgloss.Color("#3B82F6"), // Blue
	Accent:   lipgloss.Color("#EF4444"), // Red
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Success:  lipgloss.Color("#00B894"), // Green
	Selected: lipgloss.Color("#FFEAA7"), // Yellow
}

// Styles contains all the lipgloss styles for the dashboard.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style

	// Status line
	StatusTracking lipgloss.Style
	StatusIdle     lipgloss.Style
	StatusClock    lipgloss.Style

	// Task list
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskActive   lipgloss.Style
	TaskMeta     lipgloss.Style
	Cursor       lipgloss.Style

	// Chart
	ChartTitle lipgloss.Style
	ChartLabel lipgloss.Style
	ChartBar   lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Footer
	Footer   lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the dashboard.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		StatusTracking: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		StatusIdle: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatusClock: lipgloss.NewStyle().
			Bold(true),

		TaskNormal: lipgloss.NewStyle(),

		TaskSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Selected),

		TaskActive: lipgloss.NewStyle().
			Foreground(Colors.Success),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Cursor: lipgloss.NewStyle().
			Foreground(Colors.Selected).
			Bold(true),

		ChartTitle: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),

		ChartLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ChartBar: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
