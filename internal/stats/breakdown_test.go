package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyflow/internal/domain"
)

func TestBreakdown_RanksDescending(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	windowStart := domain.StartOfDay(now.AddDate(0, 0, -domain.WindowWeek))
	sessions := []domain.Session{
		closedSession("task_1", now.Add(-5*time.Hour), 100*time.Second),
		closedSession("task_2", now.Add(-4*time.Hour), 300*time.Second),
		closedSession("task_1", now.Add(-3*time.Hour), 100*time.Second),
	}

	items := Breakdown(sessions, "", windowStart, now)

	require.Len(t, items, 2)
	assert.Equal(t, BreakdownItem{TaskID: "task_2", TotalSeconds: 300}, items[0])
	assert.Equal(t, BreakdownItem{TaskID: "task_1", TotalSeconds: 200}, items[1])
}

func TestBreakdown_StableTieBreak(t *testing.T) {
	// Equal totals keep first-encounter order from the session list.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	windowStart := domain.StartOfDay(now.AddDate(0, 0, -domain.WindowWeek))
	sessions := []domain.Session{
		closedSession("task_b", now.Add(-3*time.Hour), 60*time.Second),
		closedSession("task_a", now.Add(-2*time.Hour), 60*time.Second),
	}

	items := Breakdown(sessions, "", windowStart, now)

	require.Len(t, items, 2)
	assert.Equal(t, "task_b", items[0].TaskID)
	assert.Equal(t, "task_a", items[1].TaskID)
}

func TestBreakdown_WindowStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	windowStart := domain.StartOfDay(now.AddDate(0, 0, -domain.WindowWeek))
	sessions := []domain.Session{
		closedSession("task_1", now.AddDate(0, 0, -20), 999*time.Second), // outside window
		closedSession("task_1", now.Add(-time.Hour), 60*time.Second),
	}

	items := Breakdown(sessions, "", windowStart, now)

	require.Len(t, items, 1)
	assert.Equal(t, int64(60), items[0].TotalSeconds)
}

func TestBreakdown_TaskFilter(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	windowStart := domain.StartOfDay(now.AddDate(0, 0, -domain.WindowWeek))
	sessions := []domain.Session{
		closedSession("task_1", now.Add(-2*time.Hour), 100*time.Second),
		closedSession("task_2", now.Add(-1*time.Hour), 200*time.Second),
	}

	items := Breakdown(sessions, "task_1", windowStart, now)

	require.Len(t, items, 1)
	assert.Equal(t, "task_1", items[0].TaskID)
}

func TestBreakdown_RunningSessionCountedLive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	windowStart := domain.StartOfDay(now.AddDate(0, 0, -domain.WindowWeek))
	sessions := []domain.Session{
		domain.NewSession("task_1", "cat_1", now.Add(-150*time.Second)),
	}

	items := Breakdown(sessions, "", windowStart, now)

	require.Len(t, items, 1)
	assert.Equal(t, int64(150), items[0].TotalSeconds)
}

func TestBreakdown_Empty(t *testing.T) {
	assert.Empty(t, Breakdown(nil, "", time.Now().AddDate(0, 0, -7), time.Now()))
}
