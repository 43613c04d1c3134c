package usecase

import (
	"context"

	"studyflow/internal/domain"
	"studyflow/internal/stats"
)

// StatusOutput describes the running session, if any.
// Task and Category are nil when the session references entities that no
// longer exist; TodaySeconds includes the live elapsed time.
type StatusOutput struct {
	Session        *domain.Session
	Task           *domain.Task
	Category       *domain.Category
	ElapsedSeconds int64
	TodaySeconds   int64
}

// Status is the use case for inspecting the running session.
type Status struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewStatus creates a new Status use case.
func NewStatus(store domain.SnapshotStore, clock domain.Clock) *Status {
	return &Status{store: store, clock: clock}
}

// Execute returns the current session status. Session is nil when nothing
// is running; that is a normal state, not an error.
func (uc *Status) Execute(_ context.Context) (*StatusOutput, error) {
	data, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	active := domain.ActiveSession(data.Sessions)
	if active == nil {
		return &StatusOutput{}, nil
	}

	now := uc.clock.Now()
	sess := *active
	out := &StatusOutput{
		Session:        &sess,
		Task:           data.FindTask(sess.TaskID),
		ElapsedSeconds: sess.EffectiveDuration(now),
		TodaySeconds:   stats.ForTask(data.Sessions, sess.TaskID, now).TodaySeconds,
	}
	if out.Task != nil {
		out.Category = data.FindCategory(out.Task.CategoryID)
	}
	return out, nil
}
