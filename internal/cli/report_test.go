package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studyflow/internal/domain"
	"studyflow/internal/testutil"
)

func TestNewReportCommand_Week(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local)
	store := testutil.NewMockStore()
	start := now.Add(-2 * time.Hour)
	store.Data.Sessions = []domain.Session{
		domain.NewSession("task_1", "cat_1", start).Stop(start.Add(90 * time.Minute)),
	}
	container := newTestContainer(store, now)

	cmd := newReportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	err := cmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Last 7 days")
	assert.Contains(t, out, "Breakdown")
	assert.Contains(t, out, "Study")
	assert.Contains(t, out, "1h 30m")
}

func TestNewReportCommand_MonthWindow(t *testing.T) {
	store := testutil.NewMockStore()
	container := newTestContainer(store, time.Now())

	cmd := newReportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--window", "month"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Last 30 days")
	assert.Contains(t, buf.String(), "No time tracked in this window.")
}

func TestNewReportCommand_InvalidWindow(t *testing.T) {
	store := testutil.NewMockStore()
	container := newTestContainer(store, time.Now())

	cmd := newReportCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--window", "fortnight"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestNewReportCommand_TaskFilter(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local)
	store := testutil.NewMockStore()
	s1 := now.Add(-3 * time.Hour)
	s2 := now.Add(-time.Hour)
	store.Data.Sessions = []domain.Session{
		domain.NewSession("task_1", "cat_1", s1).Stop(s1.Add(time.Hour)),
		domain.NewSession("task_2", "cat_2", s2).Stop(s2.Add(30 * time.Minute)),
	}
	container := newTestContainer(store, now)

	cmd := newReportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--task", "Productivity"})

	err := cmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Productivity")
	assert.NotContains(t, out, "Study")
}
