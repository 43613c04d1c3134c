package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"studyflow/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgDataLoaded:
		m.rows = msg.Rows
		m.status = msg.Status
		m.report = msg.Report
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case MsgSessionStarted:
		m.err = nil
		return m, m.loadData()

	case MsgSessionStopped:
		m.err = nil
		return m, m.loadData()

	case MsgTaskSaved:
		m.mode = ModeNormal
		m.nameInput.Reset()
		m.nameInput.Blur()
		return m, m.loadData()

	case MsgNotified:
		m.notifiedSession = msg.SessionID
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		return m, nil

	case tickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick refreshes live data while a session runs and fires the focus
// goal notification once per session.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tick()}

	if m.status != nil && m.status.Session != nil {
		cmds = append(cmds, m.loadData())

		if cmd := m.focusGoalCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// focusGoalCmd returns the notification command when the running session has
// reached the configured focus goal and has not been notified yet.
func (m *Model) focusGoalCmd() tea.Cmd {
	if !m.config.Notify.Enabled || m.config.Notify.FocusMinutes <= 0 {
		return nil
	}
	sess := m.status.Session
	if sess.ID == m.notifiedSession {
		return nil
	}
	goalSeconds := int64(m.config.Notify.FocusMinutes) * 60
	if m.status.ElapsedSeconds < goalSeconds {
		return nil
	}

	// Guard immediately; MsgNotified confirms it
	m.notifiedSession = sess.ID
	minutes := m.config.Notify.FocusMinutes
	id := sess.ID
	return func() tea.Msg {
		body := fmt.Sprintf("%d minutes of focus reached. Time for a break?", minutes)
		_ = beeep.Notify("studyflow", body, "")
		return MsgNotified{SessionID: id}
	}
}

// handleKeyMsg routes key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeAdd || m.mode == ModeRename {
		return m.handleInputKey(msg)
	}
	return m.handleNormalKey(msg)
}

// handleInputKey handles keys while the name input is focused.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.nameInput.Reset()
		m.nameInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		if m.mode == ModeRename {
			row := m.SelectedRow()
			if row == nil {
				m.mode = ModeNormal
				return m, nil
			}
			return m, m.renameTask(row.Task.ID, name)
		}
		return m, m.addTask(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleNormalKey handles keys in the normal browsing mode.
func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Start):
		row := m.SelectedRow()
		if row == nil {
			return m, nil
		}
		return m, m.startSession(row.Task.ID, row.Task.Name)

	case key.Matches(msg, m.keys.Stop):
		return m, m.stopSession()

	case key.Matches(msg, m.keys.New):
		m.mode = ModeAdd
		m.nameInput.Placeholder = "New task name"
		m.nameInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		row := m.SelectedRow()
		if row == nil {
			return m, nil
		}
		m.mode = ModeRename
		m.nameInput.Placeholder = "New name"
		m.nameInput.SetValue(row.Task.Name)
		m.nameInput.CursorEnd()
		m.nameInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Window):
		if m.windowDays == domain.WindowWeek {
			m.windowDays = domain.WindowMonth
		} else {
			m.windowDays = domain.WindowWeek
		}
		return m, m.loadData()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadData()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.err = nil
		return m, nil
	}

	return m, nil
}
