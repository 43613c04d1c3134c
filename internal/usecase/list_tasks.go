package usecase

import (
	"context"

	"studyflow/internal/domain"
	"studyflow/internal/stats"
)

// TaskRow is one task joined with its category and headline stats.
// Category is nil when the referenced category no longer exists.
type TaskRow struct {
	Category     *domain.Category
	Task         domain.Task
	TotalSeconds int64
	TodaySeconds int64
	Active       bool
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Rows []TaskRow
}

// ListTasks is the use case for listing tasks with their stats.
type ListTasks struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.SnapshotStore, clock domain.Clock) *ListTasks {
	return &ListTasks{store: store, clock: clock}
}

// Execute lists all tasks in snapshot order.
func (uc *ListTasks) Execute(_ context.Context) (*ListTasksOutput, error) {
	data, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	active := domain.ActiveSession(data.Sessions)

	rows := make([]TaskRow, 0, len(data.Tasks))
	for _, task := range data.Tasks {
		st := stats.ForTask(data.Sessions, task.ID, now)
		rows = append(rows, TaskRow{
			Task:         task,
			Category:     data.FindCategory(task.CategoryID),
			TotalSeconds: st.TotalSeconds,
			TodaySeconds: st.TodaySeconds,
			Active:       active != nil && active.TaskID == task.ID,
		})
	}

	return &ListTasksOutput{Rows: rows}, nil
}
