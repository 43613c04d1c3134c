// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"studyflow/internal/domain"
)

// StartSessionInput contains the parameters for starting a session.
type StartSessionInput struct {
	TaskID string // Task to track time against
}

// StartSessionOutput contains the result of starting a session.
type StartSessionOutput struct {
	Session domain.Session  // The new running session
	Stopped *domain.Session // Previously running session closed by the switch, if any
}

// StartSession is the use case for starting a tracking session.
// If another session is running it is stopped first; both changes land in
// one snapshot write, so no state with zero or two running sessions is
// ever persisted or observable (the switch protocol).
type StartSession struct {
	store  domain.SnapshotStore
	clock  domain.Clock
	logger domain.Logger
}

// NewStartSession creates a new StartSession use case.
func NewStartSession(store domain.SnapshotStore, clock domain.Clock, logger domain.Logger) *StartSession {
	return &StartSession{store: store, clock: clock, logger: logger}
}

// Execute starts a session for the given task.
func (uc *StartSession) Execute(_ context.Context, in StartSessionInput) (*StartSessionOutput, error) {
	out := &StartSessionOutput{}

	err := uc.store.Mutate(func(data *domain.AppData) error {
		task := data.FindTask(in.TaskID)
		if task == nil {
			return fmt.Errorf("task %q: %w", in.TaskID, domain.ErrTaskNotFound)
		}

		now := uc.clock.Now()

		if n := domain.CountActive(data.Sessions); n > 1 {
			uc.logger.Warn("session", fmt.Sprintf("snapshot has %d running sessions; invariant violated", n))
		}
		if active := domain.ActiveSession(data.Sessions); active != nil {
			stopped := active.Stop(now)
			*active = stopped
			out.Stopped = &stopped
			uc.logger.Info("session", fmt.Sprintf("stopped %s after %ds (switch)", stopped.ID, stopped.DurationSeconds))
		}

		sess := domain.NewSession(task.ID, task.CategoryID, now)
		data.Sessions = append(data.Sessions, sess)
		out.Session = sess
		uc.logger.Info("session", fmt.Sprintf("started %s for task %q", sess.ID, task.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
