package usecase

import (
	"context"
	"fmt"
	"strings"

	"studyflow/internal/domain"
)

// RenameTaskInput contains the parameters for renaming a task.
type RenameTaskInput struct {
	TaskID  string
	NewName string
}

// RenameTaskOutput contains the result of renaming a task.
type RenameTaskOutput struct {
	Task domain.Task
}

// RenameTask is the use case for renaming a task.
type RenameTask struct {
	store  domain.SnapshotStore
	logger domain.Logger
}

// NewRenameTask creates a new RenameTask use case.
func NewRenameTask(store domain.SnapshotStore, logger domain.Logger) *RenameTask {
	return &RenameTask{store: store, logger: logger}
}

// Execute renames the task with the given input.
func (uc *RenameTask) Execute(_ context.Context, in RenameTaskInput) (*RenameTaskOutput, error) {
	name := strings.TrimSpace(in.NewName)
	if name == "" {
		return nil, domain.ErrEmptyTaskName
	}

	out := &RenameTaskOutput{}
	err := uc.store.Mutate(func(data *domain.AppData) error {
		task := data.FindTask(in.TaskID)
		if task == nil {
			return fmt.Errorf("task %q: %w", in.TaskID, domain.ErrTaskNotFound)
		}

		old := task.Name
		task.Name = name
		out.Task = *task
		uc.logger.Info("task", fmt.Sprintf("renamed %s from %q to %q", task.ID, old, name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
