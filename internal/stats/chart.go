package stats

import (
	"fmt"
	"time"

	"studyflow/internal/domain"
)

// DayBucket is one pre-allocated calendar-day slot of a chart series.
// Hours maps task ID to fractional hours tracked that day.
type DayBucket struct {
	Hours map[string]float64
	Label string
	Date  int64 // local midnight, epoch ms
}

// ChartSeries buckets sessions into exactly windowDays calendar days ending
// at today, in ascending date order. Every known task gets a zero slot in
// every bucket; a session whose task is no longer known still accumulates
// under its ID via a lazily created slot. If taskFilter is non-empty only
// that task's sessions are counted.
//
// Sessions are admitted from local midnight of (now - windowDays days), one
// day before the first bucket; those on the extra leading day have no bucket
// and are skipped.
func ChartSeries(sessions []domain.Session, tasks []domain.Task, windowDays int, now time.Time, taskFilter string) []DayBucket {
	buckets := make([]DayBucket, 0, windowDays)
	index := make(map[int64]int, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := domain.StartOfDay(now.AddDate(0, 0, -i))
		b := DayBucket{
			Date:  domain.Millis(day),
			Label: dayLabel(day, windowDays),
			Hours: make(map[string]float64, len(tasks)),
		}
		for _, t := range tasks {
			b.Hours[t.ID] = 0
		}
		index[b.Date] = len(buckets)
		buckets = append(buckets, b)
	}

	rangeStart := domain.StartOfDayMillis(now.AddDate(0, 0, -windowDays))
	for _, s := range sessions {
		if s.StartTime < rangeStart {
			continue
		}
		if taskFilter != "" && s.TaskID != taskFilter {
			continue
		}
		day := domain.StartOfDayMillis(time.UnixMilli(s.StartTime))
		i, ok := index[day]
		if !ok {
			continue
		}
		buckets[i].Hours[s.TaskID] += float64(s.EffectiveDuration(now)) / 3600
	}

	return buckets
}

// dayLabel renders a short human label for a bucket day.
// The 7-day window includes the weekday, the 30-day window just month/day.
func dayLabel(day time.Time, windowDays int) string {
	if windowDays <= domain.WindowWeek {
		return fmt.Sprintf("%s %d/%d", day.Weekday().String()[:3], int(day.Month()), day.Day())
	}
	return fmt.Sprintf("%d/%d", int(day.Month()), day.Day())
}
