package domain

import "time"

// SnapshotStore persists the whole AppData snapshot.
// There are no partial or merge semantics: Save overwrites everything.
type SnapshotStore interface {
	// Load returns the current snapshot, or the built-in seed snapshot
	// if none exists. A malformed file yields ErrCorruptSnapshot.
	Load() (*AppData, error)

	// Save overwrites the entire snapshot atomically.
	Save(data *AppData) error

	// Mutate applies fn to the current snapshot and persists the result
	// as one atomic write. It is the single-writer read-modify-persist
	// sequence: no intermediate state is ever observable.
	Mutate(fn func(data *AppData) error) error
}

// Logger writes leveled, category-tagged log lines.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over defaults.
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
