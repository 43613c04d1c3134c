package usecase

import (
	"time"

	"studyflow/internal/domain"
)

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

// mockStore is an in-memory test double for domain.SnapshotStore.
type mockStore struct {
	data      *domain.AppData
	loadErr   error
	saveErr   error
	mutateErr error
	saves     int
}

func newMockStore() *mockStore {
	return &mockStore{data: domain.SeedData()}
}

func (m *mockStore) Load() (*domain.AppData, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data, nil
}

func (m *mockStore) Save(data *domain.AppData) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = data
	m.saves++
	return nil
}

func (m *mockStore) Mutate(fn func(*domain.AppData) error) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	if err := fn(m.data); err != nil {
		return err
	}
	m.saves++
	return nil
}

// nopLogger discards all log output.
type nopLogger struct{}

func (nopLogger) Debug(string, string) {}
func (nopLogger) Info(string, string)  {}
func (nopLogger) Warn(string, string)  {}
func (nopLogger) Error(string, string) {}
