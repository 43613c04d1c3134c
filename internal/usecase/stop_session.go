package usecase

import (
	"context"
	"fmt"

	"studyflow/internal/domain"
)

// StopSessionOutput contains the result of stopping the running session.
type StopSessionOutput struct {
	Session domain.Session // The closed session
}

// StopSession is the use case for stopping the running session.
type StopSession struct {
	store  domain.SnapshotStore
	clock  domain.Clock
	logger domain.Logger
}

// NewStopSession creates a new StopSession use case.
func NewStopSession(store domain.SnapshotStore, clock domain.Clock, logger domain.Logger) *StopSession {
	return &StopSession{store: store, clock: clock, logger: logger}
}

// Execute stops the running session, if any.
func (uc *StopSession) Execute(_ context.Context) (*StopSessionOutput, error) {
	out := &StopSessionOutput{}

	err := uc.store.Mutate(func(data *domain.AppData) error {
		active := domain.ActiveSession(data.Sessions)
		if active == nil {
			return domain.ErrNoActiveSession
		}

		stopped := active.Stop(uc.clock.Now())
		*active = stopped
		out.Session = stopped
		uc.logger.Info("session", fmt.Sprintf("stopped %s after %ds", stopped.ID, stopped.DurationSeconds))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
