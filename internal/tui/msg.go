package tui

import (
	"time"

	"studyflow/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgDataLoaded is sent when the dashboard data is loaded.
type MsgDataLoaded struct {
	Status *usecase.StatusOutput
	Report *usecase.ReportOutput
	Rows   []usecase.TaskRow
}

func (MsgDataLoaded) sealed() {}

// MsgSessionStarted is sent when a tracking session is started.
type MsgSessionStarted struct {
	TaskName string
}

func (MsgSessionStarted) sealed() {}

// MsgSessionStopped is sent when the running session is stopped.
type MsgSessionStopped struct {
	DurationSeconds int64
}

func (MsgSessionStopped) sealed() {}

// MsgTaskSaved is sent when a task is added or renamed.
type MsgTaskSaved struct{}

func (MsgTaskSaved) sealed() {}

// MsgNotified is sent after the focus goal notification fires.
type MsgNotified struct {
	SessionID string
}

func (MsgNotified) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// tickMsg drives the live elapsed timer while a session runs.
type tickMsg time.Time
