// Package format renders durations for terminal output.
package format

import "fmt"

// Duration renders a duration in seconds as a compact human string.
// Examples: "2h 5m", "12m", "0m". Sub-minute amounts round down.
func Duration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// Clock renders a duration in seconds as a running clock.
// Examples: "1:02:09" with hours, "02:09" without.
func Clock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// Hours renders fractional hours for chart output. Examples: "1.5h", "0.2h".
func Hours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}
