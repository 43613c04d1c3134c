// Package jsonstore provides a JSON file-based implementation of
// domain.SnapshotStore. The whole AppData snapshot lives in one file;
// writes go to a temp file and are renamed into place, and an flock
// serializes concurrent processes.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"studyflow/internal/domain"
)

// Store implements domain.SnapshotStore using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; Load returns the seed snapshot until
// the first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Load returns the current snapshot under a shared lock.
func (s *Store) Load() (*domain.AppData, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	return s.read()
}

// Save overwrites the entire snapshot under an exclusive lock.
func (s *Store) Save(data *domain.AppData) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	return s.write(data)
}

// Mutate applies fn to the current snapshot and persists the result as one
// atomic write, all under an exclusive lock. If fn returns an error nothing
// is written.
func (s *Store) Mutate(fn func(data *domain.AppData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*domain.AppData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.SeedData(), nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var data domain.AppData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCorruptSnapshot, err)
	}

	// Ensure slices are initialized
	if data.Categories == nil {
		data.Categories = []domain.Category{}
	}
	if data.Tasks == nil {
		data.Tasks = []domain.Task{}
	}
	if data.Sessions == nil {
		data.Sessions = []domain.Session{}
	}

	return &data, nil
}

func (s *Store) write(data *domain.AppData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements SnapshotStore.
var _ domain.SnapshotStore = (*Store)(nil)
