package usecase

import (
	"context"
	"fmt"
	"strings"

	"studyflow/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
type AddTaskInput struct {
	Name       string // Task name (required)
	CategoryID string // Owning category (must exist)
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task domain.Task
}

// AddTask is the use case for creating a task.
type AddTask struct {
	store  domain.SnapshotStore
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.SnapshotStore, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{store: store, clock: clock, logger: logger}
}

// Execute creates a task with the given input.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyTaskName
	}

	out := &AddTaskOutput{}
	err := uc.store.Mutate(func(data *domain.AppData) error {
		if data.FindCategory(in.CategoryID) == nil {
			return fmt.Errorf("category %q: %w", in.CategoryID, domain.ErrCategoryNotFound)
		}

		task := domain.Task{
			ID:         domain.NewTaskID(uc.clock.Now()),
			CategoryID: in.CategoryID,
			Name:       name,
		}
		data.Tasks = append(data.Tasks, task)
		out.Task = task
		uc.logger.Info("task", fmt.Sprintf("created %s (%q)", task.ID, task.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
