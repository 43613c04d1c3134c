package stats

import (
	"sort"
	"time"

	"studyflow/internal/domain"
)

// BreakdownItem is one task's total in a ranked breakdown.
type BreakdownItem struct {
	TaskID       string
	TotalSeconds int64
}

// Breakdown sums effective duration per task over sessions that started at
// or after windowStart, optionally filtered to one task, ranked by total
// descending. The sort is stable: ties keep the order in which each task
// was first encountered in the session list.
func Breakdown(sessions []domain.Session, taskFilter string, windowStart time.Time, now time.Time) []BreakdownItem {
	startMs := domain.Millis(windowStart)

	totals := make(map[string]int64)
	var order []string
	for _, s := range sessions {
		if s.StartTime < startMs {
			continue
		}
		if taskFilter != "" && s.TaskID != taskFilter {
			continue
		}
		if _, seen := totals[s.TaskID]; !seen {
			order = append(order, s.TaskID)
		}
		totals[s.TaskID] += s.EffectiveDuration(now)
	}

	items := make([]BreakdownItem, 0, len(order))
	for _, id := range order {
		items = append(items, BreakdownItem{TaskID: id, TotalSeconds: totals[id]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TotalSeconds > items[j].TotalSeconds
	})
	return items
}
