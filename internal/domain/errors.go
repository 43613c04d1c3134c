package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoActiveSession  = errors.New("no session is running")
	ErrEmptyTaskName    = errors.New("task name cannot be empty")
	ErrCorruptSnapshot  = errors.New("snapshot file is corrupt (run 'studyflow reset' to start over)")
	ErrInvalidWindow    = errors.New("invalid report window")
)
