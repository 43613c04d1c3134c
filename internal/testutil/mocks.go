// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"studyflow/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockStore is an in-memory test double for domain.SnapshotStore.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	Data      *domain.AppData
	LoadErr   error
	SaveErr   error
	MutateErr error
	Saves     int
}

// Ensure MockStore implements domain.SnapshotStore interface.
var _ domain.SnapshotStore = (*MockStore)(nil)

// NewMockStore creates a new MockStore holding the seed data.
func NewMockStore() *MockStore {
	return &MockStore{Data: domain.SeedData()}
}

// Load returns the in-memory snapshot or the configured error.
func (m *MockStore) Load() (*domain.AppData, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Data, nil
}

// Save replaces the in-memory snapshot or returns the configured error.
func (m *MockStore) Save(data *domain.AppData) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Data = data
	m.Saves++
	return nil
}

// Mutate applies fn to the in-memory snapshot.
func (m *MockStore) Mutate(fn func(*domain.AppData) error) error {
	if m.MutateErr != nil {
		return m.MutateErr
	}
	if err := fn(m.Data); err != nil {
		return err
	}
	m.Saves++
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Ensure NopLogger implements domain.Logger interface.
var _ domain.Logger = NopLogger{}

// Debug discards the message.
func (NopLogger) Debug(string, string) {}

// Info discards the message.
func (NopLogger) Info(string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string) {}
