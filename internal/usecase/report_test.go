package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyflow/internal/domain"
)

func TestReport_Execute_Week(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local)
	store := newMockStore()
	twoDaysAgo := now.AddDate(0, 0, -2)
	store.data.Sessions = []domain.Session{
		domain.NewSession("task_1", "cat_1", twoDaysAgo).Stop(twoDaysAgo.Add(30 * time.Minute)),
		domain.NewSession("task_2", "cat_2", now.Add(-time.Hour)).Stop(now.Add(-time.Hour).Add(45 * time.Minute)),
	}

	uc := NewReport(store, &mockClock{now: now})
	out, err := uc.Execute(context.Background(), ReportInput{WindowDays: domain.WindowWeek})

	require.NoError(t, err)
	assert.Len(t, out.Series, 7)
	assert.Equal(t, 7, out.WindowDays)
	require.Len(t, out.Breakdown, 2)
	assert.Equal(t, "task_2", out.Breakdown[0].TaskID, "breakdown ranked by time descending")
	assert.Equal(t, int64(2700), out.Breakdown[0].TotalSeconds)
	assert.Len(t, out.Tasks, 2)
	assert.Len(t, out.Categories, 2)
}

func TestReport_Execute_TaskFilter(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local)
	store := newMockStore()
	store.data.Sessions = []domain.Session{
		domain.NewSession("task_1", "cat_1", now.Add(-2*time.Hour)).Stop(now.Add(-time.Hour)),
		domain.NewSession("task_2", "cat_2", now.Add(-time.Hour)).Stop(now.Add(-30*time.Minute)),
	}

	uc := NewReport(store, &mockClock{now: now})
	out, err := uc.Execute(context.Background(), ReportInput{WindowDays: domain.WindowMonth, TaskFilter: "task_1"})

	require.NoError(t, err)
	assert.Len(t, out.Series, 30)
	require.Len(t, out.Breakdown, 1)
	assert.Equal(t, "task_1", out.Breakdown[0].TaskID)
}

func TestReport_Execute_InvalidWindow(t *testing.T) {
	store := newMockStore()

	uc := NewReport(store, &mockClock{now: time.Now()})
	_, err := uc.Execute(context.Background(), ReportInput{WindowDays: 14})

	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}
