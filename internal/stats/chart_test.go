package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyflow/internal/domain"
)

var chartTasks = []domain.Task{
	{ID: "task_1", CategoryID: "cat_1", Name: "Study"},
	{ID: "task_2", CategoryID: "cat_2", Name: "Productivity"},
}

func TestChartSeries_WindowCompleteness(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	for _, windowDays := range []int{domain.WindowWeek, domain.WindowMonth} {
		buckets := ChartSeries(nil, chartTasks, windowDays, now, "")

		require.Len(t, buckets, windowDays, "window of %d days", windowDays)
		// Ascending calendar days ending today, every task zeroed.
		for i, b := range buckets {
			wantDay := domain.StartOfDayMillis(now.AddDate(0, 0, -(windowDays - 1 - i)))
			assert.Equal(t, wantDay, b.Date)
			assert.Zero(t, b.Hours["task_1"])
			assert.Zero(t, b.Hours["task_2"])
		}
		assert.Equal(t, domain.StartOfDayMillis(now), buckets[windowDays-1].Date)
	}
}

func TestChartSeries_BucketsSessions(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	sessions := []domain.Session{
		closedSession("task_1", now.Add(-2*time.Hour), 1800*time.Second), // today, 0.5h
		closedSession("task_1", now.AddDate(0, 0, -1), 3600*time.Second), // yesterday, 1h
		closedSession("task_2", now.AddDate(0, 0, -1), 7200*time.Second), // yesterday, 2h
	}

	buckets := ChartSeries(sessions, chartTasks, domain.WindowWeek, now, "")

	require.Len(t, buckets, 7)
	today := buckets[6]
	yesterday := buckets[5]
	assert.InDelta(t, 0.5, today.Hours["task_1"], 1e-9)
	assert.InDelta(t, 1.0, yesterday.Hours["task_1"], 1e-9)
	assert.InDelta(t, 2.0, yesterday.Hours["task_2"], 1e-9)
	assert.Zero(t, today.Hours["task_2"])
}

func TestChartSeries_TaskFilter(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	sessions := []domain.Session{
		closedSession("task_1", now.Add(-2*time.Hour), 3600*time.Second),
		closedSession("task_2", now.Add(-1*time.Hour), 3600*time.Second),
	}

	buckets := ChartSeries(sessions, chartTasks, domain.WindowWeek, now, "task_2")

	today := buckets[6]
	assert.Zero(t, today.Hours["task_1"])
	assert.InDelta(t, 1.0, today.Hours["task_2"], 1e-9)
}

func TestChartSeries_UnknownTaskGetsLazySlot(t *testing.T) {
	// A session for a deleted task still accumulates under its ID.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	sessions := []domain.Session{
		closedSession("task_gone", now.Add(-time.Hour), 3600*time.Second),
	}

	buckets := ChartSeries(sessions, chartTasks, domain.WindowWeek, now, "")

	assert.InDelta(t, 1.0, buckets[6].Hours["task_gone"], 1e-9)
}

func TestChartSeries_OutOfWindowSkipped(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	sessions := []domain.Session{
		// Day before the first bucket: admitted by the range filter but has
		// no bucket, so it is skipped.
		closedSession("task_1", now.AddDate(0, 0, -domain.WindowWeek), 3600*time.Second),
		// Well outside the range.
		closedSession("task_1", now.AddDate(0, 0, -60), 3600*time.Second),
	}

	buckets := ChartSeries(sessions, chartTasks, domain.WindowWeek, now, "")

	for _, b := range buckets {
		assert.Zero(t, b.Hours["task_1"], "bucket %s", b.Label)
	}
}

func TestChartSeries_RunningSessionCountedLive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	sessions := []domain.Session{
		domain.NewSession("task_1", "cat_1", now.Add(-30*time.Minute)),
	}

	buckets := ChartSeries(sessions, chartTasks, domain.WindowWeek, now, "")

	assert.InDelta(t, 0.5, buckets[6].Hours["task_1"], 1e-9)
}

func TestChartSeries_Labels(t *testing.T) {
	// Tuesday 2026-03-10.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	week := ChartSeries(nil, chartTasks, domain.WindowWeek, now, "")
	month := ChartSeries(nil, chartTasks, domain.WindowMonth, now, "")

	assert.Equal(t, "Tue 3/10", week[6].Label)
	assert.Equal(t, "Wed 3/4", week[0].Label)
	assert.Equal(t, "3/10", month[29].Label)
}
