// Package stats derives statistics from an immutable session list.
// Every function here is pure: sessions are never mutated and all duration
// math goes through Session.EffectiveDuration so a still-running session is
// counted live without drift or double counting.
package stats

import (
	"sort"
	"time"

	"studyflow/internal/domain"
)

// TaskStats holds the per-task headline numbers.
type TaskStats struct {
	TotalSeconds int64 // all-time effective duration
	TodaySeconds int64 // sessions started since local midnight of now
}

// ForTask sums effective durations over all sessions for the task.
// A session counts toward today when it started at or after local midnight.
func ForTask(sessions []domain.Session, taskID string, now time.Time) TaskStats {
	startOfToday := domain.StartOfDayMillis(now)

	var st TaskStats
	for _, s := range sessions {
		if s.TaskID != taskID {
			continue
		}
		dur := s.EffectiveDuration(now)
		st.TotalSeconds += dur
		if s.StartTime >= startOfToday {
			st.TodaySeconds += dur
		}
	}
	return st
}

// DayGroup is one calendar day of tracked time for a task.
type DayGroup struct {
	Date            int64 // local midnight, epoch ms
	DurationSeconds int64
	IsToday         bool
}

// DailyHistory groups a task's sessions by the local midnight of their start
// time and sums effective duration per group, newest day first.
func DailyHistory(sessions []domain.Session, taskID string, now time.Time) []DayGroup {
	startOfToday := domain.StartOfDayMillis(now)

	groups := make(map[int64]*DayGroup)
	for _, s := range sessions {
		if s.TaskID != taskID {
			continue
		}
		day := domain.StartOfDayMillis(time.UnixMilli(s.StartTime))
		g, ok := groups[day]
		if !ok {
			g = &DayGroup{Date: day, IsToday: day == startOfToday}
			groups[day] = g
		}
		g.DurationSeconds += s.EffectiveDuration(now)
	}

	out := make([]DayGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
