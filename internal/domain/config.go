package domain

// Report window sizes in days.
const (
	WindowWeek  = 7
	WindowMonth = 30
)

// Config represents the application configuration.
type Config struct {
	DataDir  string       `toml:"data_dir"` // Snapshot and log location (default: XDG data dir)
	Chart    ChartConfig  `toml:"chart"`    // [chart] settings
	Notify   NotifyConfig `toml:"notify"`   // [notify] settings
	Log      LogConfig    `toml:"log"`      // [log] settings
	Warnings []string     `toml:"-"`        // Non-fatal problems found while loading
}

// ChartConfig holds report defaults from the [chart] section.
type ChartConfig struct {
	DefaultWindow string `toml:"default_window"` // "week" or "month"
}

// NotifyConfig holds desktop notification settings from the [notify] section.
type NotifyConfig struct {
	Enabled      bool `toml:"enabled"`
	FocusMinutes int  `toml:"focus_minutes"` // Notify once when the running session reaches this
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Chart:  ChartConfig{DefaultWindow: "week"},
		Notify: NotifyConfig{Enabled: false, FocusMinutes: 25},
		Log:    LogConfig{Level: "info"},
	}
}

// WindowDays maps a window name to its size in days.
// Returns ErrInvalidWindow for anything but "week" or "month".
func WindowDays(name string) (int, error) {
	switch name {
	case "week":
		return WindowWeek, nil
	case "month":
		return WindowMonth, nil
	default:
		return 0, ErrInvalidWindow
	}
}
