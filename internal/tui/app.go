// Package tui implements the interactive dashboard.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"studyflow/internal/app"
	"studyflow/internal/domain"
	"studyflow/internal/usecase"
)

// Mode represents the current input mode of the dashboard.
type Mode int

// Input modes.
const (
	ModeNormal Mode = iota
	ModeAdd
	ModeRename
)

// Model is the main bubbletea model for the dashboard.
type Model struct {
	// Dependencies
	container *app.Container
	config    *domain.Config
	err       error

	// State
	rows   []usecase.TaskRow
	status *usecase.StatusOutput
	report *usecase.ReportOutput

	// Components
	keys      KeyMap
	styles    Styles
	help      help.Model
	nameInput textinput.Model

	// Focus goal notification guard: session ID already notified for
	notifiedSession string

	mode       Mode
	windowDays int
	cursor     int
	width      int
	height     int
}

// New creates a new dashboard Model with the given container.
func New(c *app.Container) *Model {
	ni := textinput.New()
	ni.Placeholder = "Task name"
	ni.CharLimit = 120

	cfg := c.AppConfig
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	windowDays, err := domain.WindowDays(cfg.Chart.DefaultWindow)
	if err != nil {
		windowDays = domain.WindowWeek
	}

	return &Model{
		container:  c,
		config:     cfg,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		nameInput:  ni,
		mode:       ModeNormal,
		windowDays: windowDays,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadData(), tick())
}

// loadData returns a command that loads everything the dashboard shows.
func (m *Model) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		list, err := m.container.ListTasksUseCase().Execute(ctx)
		if err != nil {
			return MsgError{Err: err}
		}
		status, err := m.container.StatusUseCase().Execute(ctx)
		if err != nil {
			return MsgError{Err: err}
		}
		report, err := m.container.ReportUseCase().Execute(ctx, usecase.ReportInput{WindowDays: m.windowDays})
		if err != nil {
			return MsgError{Err: err}
		}

		return MsgDataLoaded{Rows: list.Rows, Status: status, Report: report}
	}
}

// startSession returns a command that starts tracking the given task.
func (m *Model) startSession(taskID, taskName string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.StartSessionUseCase().Execute(context.Background(), usecase.StartSessionInput{TaskID: taskID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSessionStarted{TaskName: taskName}
	}
}

// stopSession returns a command that stops the running session.
func (m *Model) stopSession() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.StopSessionUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSessionStopped{DurationSeconds: out.Session.DurationSeconds}
	}
}

// addTask returns a command that creates a task in the default category.
func (m *Model) addTask(name string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
			Name:       name,
			CategoryID: "cat_1",
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskSaved{}
	}
}

// renameTask returns a command that renames the given task.
func (m *Model) renameTask(taskID, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.RenameTaskUseCase().Execute(context.Background(), usecase.RenameTaskInput{
			TaskID:  taskID,
			NewName: name,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskSaved{}
	}
}

// tick drives the live elapsed timer.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// SelectedRow returns the row under the cursor, or nil if the list is empty.
func (m *Model) SelectedRow() *usecase.TaskRow {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}
