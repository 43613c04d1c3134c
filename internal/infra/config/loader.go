// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"studyflow/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file in the user config directory.
type Loader struct {
	confDir string // e.g. ~/.config/studyflow
}

// NewLoader creates a new Loader using the XDG config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "studyflow")
}

// Load returns the configuration merged over defaults.
// A missing file yields the defaults; invalid values are replaced by their
// defaults and reported through Config.Warnings rather than failing.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if l.confDir == "" {
		return cfg, nil
	}

	path := filepath.Join(l.confDir, domain.ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var file domain.Config
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	merge(cfg, &file)
	validate(cfg)

	return cfg, nil
}

// merge overlays non-zero values from file onto base.
func merge(base, file *domain.Config) {
	if file.DataDir != "" {
		base.DataDir = file.DataDir
	}
	if file.Chart.DefaultWindow != "" {
		base.Chart.DefaultWindow = file.Chart.DefaultWindow
	}
	if file.Log.Level != "" {
		base.Log.Level = file.Log.Level
	}
	if file.Notify.Enabled {
		base.Notify.Enabled = true
	}
	if file.Notify.FocusMinutes != 0 {
		base.Notify.FocusMinutes = file.Notify.FocusMinutes
	}
}

// validate replaces invalid values with defaults and records warnings.
func validate(cfg *domain.Config) {
	if _, err := domain.WindowDays(cfg.Chart.DefaultWindow); err != nil {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("chart.default_window %q is not \"week\" or \"month\"; using \"week\"", cfg.Chart.DefaultWindow))
		cfg.Chart.DefaultWindow = "week"
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("log.level %q is unknown; using \"info\"", cfg.Log.Level))
		cfg.Log.Level = "info"
	}
	if cfg.Notify.FocusMinutes < 0 {
		cfg.Warnings = append(cfg.Warnings, "notify.focus_minutes is negative; notifications disabled")
		cfg.Notify.Enabled = false
		cfg.Notify.FocusMinutes = 0
	}
}
