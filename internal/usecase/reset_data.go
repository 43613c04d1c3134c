package usecase

import (
	"context"

	"studyflow/internal/domain"
)

// ResetData is the use case for replacing the snapshot with the built-in
// seed data. It is the recovery path for a corrupt snapshot and works even
// when the existing file cannot be parsed.
type ResetData struct {
	store  domain.SnapshotStore
	logger domain.Logger
}

// NewResetData creates a new ResetData use case.
func NewResetData(store domain.SnapshotStore, logger domain.Logger) *ResetData {
	return &ResetData{store: store, logger: logger}
}

// Execute overwrites the snapshot with the seed data.
func (uc *ResetData) Execute(_ context.Context) error {
	if err := uc.store.Save(domain.SeedData()); err != nil {
		return err
	}
	uc.logger.Warn("store", "snapshot reset to seed data")
	return nil
}
