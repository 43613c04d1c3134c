package usecase

import (
	"context"
	"fmt"

	"studyflow/internal/domain"
	"studyflow/internal/stats"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID string
}

// ShowTaskOutput contains a task's detail view data.
type ShowTaskOutput struct {
	Category     *domain.Category // nil if the category was removed
	Task         domain.Task
	History      []stats.DayGroup // newest day first
	TotalSeconds int64
	TodaySeconds int64
	Active       bool
}

// ShowTask is the use case for the task detail view: headline totals plus
// the day-grouped history.
type ShowTask struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(store domain.SnapshotStore, clock domain.Clock) *ShowTask {
	return &ShowTask{store: store, clock: clock}
}

// Execute returns the detail view data for the given task.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	data, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	task := data.FindTask(in.TaskID)
	if task == nil {
		return nil, fmt.Errorf("task %q: %w", in.TaskID, domain.ErrTaskNotFound)
	}

	now := uc.clock.Now()
	st := stats.ForTask(data.Sessions, task.ID, now)
	active := domain.ActiveSession(data.Sessions)

	return &ShowTaskOutput{
		Task:         *task,
		Category:     data.FindCategory(task.CategoryID),
		History:      stats.DailyHistory(data.Sessions, task.ID, now),
		TotalSeconds: st.TotalSeconds,
		TodaySeconds: st.TodaySeconds,
		Active:       active != nil && active.TaskID == task.ID,
	}, nil
}
