// Package domain contains core business entities and interfaces.
package domain

import "time"

// Session represents one contiguous interval of tracked time against a task.
// Timestamps are epoch milliseconds in the host's local calendar.
// Fields are ordered to minimize memory padding.
type Session struct {
	ID              string `json:"id"`
	TaskID          string `json:"taskId"`
	CategoryID      string `json:"categoryId"`      // snapshot of the task's category at creation time
	EndTime         *int64 `json:"endTime"`         // nil while the session is running
	StartTime       int64  `json:"startTime"`       // epoch ms
	DurationSeconds int64  `json:"durationSeconds"` // set on stop; stale (0) while running
	Date            int64  `json:"date"`            // local midnight of StartTime, aggregation key
}

// NewSession creates a running session starting at now.
// It is a pure constructor: the caller must stop any currently active
// session first and append the result to the collection in a single
// snapshot write, so that at most one running session is ever observable.
func NewSession(taskID, categoryID string, now time.Time) Session {
	return Session{
		ID:         NewSessionID(now),
		TaskID:     taskID,
		CategoryID: categoryID,
		StartTime:  Millis(now),
		Date:       StartOfDayMillis(now),
	}
}

// IsActive reports whether the session is still running.
func (s Session) IsActive() bool {
	return s.EndTime == nil
}

// Stop returns a closed copy of the session with DurationSeconds set.
// Stopping an already-closed session returns it unchanged.
// A duration that would be negative due to clock skew is clamped to zero.
func (s Session) Stop(now time.Time) Session {
	if !s.IsActive() {
		return s
	}
	end := Millis(now)
	stopped := s
	stopped.EndTime = &end
	stopped.DurationSeconds = elapsedSeconds(s.StartTime, end)
	return stopped
}

// EffectiveDuration returns the session's duration in seconds at evaluation
// time now: computed live from timestamps if the session is running, the
// stored closed duration otherwise. Aggregations must use this, never the
// raw DurationSeconds, so a running session is not under-counted.
func (s Session) EffectiveDuration(now time.Time) int64 {
	if s.IsActive() {
		return elapsedSeconds(s.StartTime, Millis(now))
	}
	return s.DurationSeconds
}

// ActiveSession returns a pointer to the unique running session, or nil.
// If the single-active invariant is violated it returns the first match;
// callers should treat that as a latent data-corruption signal.
func ActiveSession(sessions []Session) *Session {
	for i := range sessions {
		if sessions[i].IsActive() {
			return &sessions[i]
		}
	}
	return nil
}

// CountActive returns the number of running sessions. Anything above one
// means the snapshot violates the single-active invariant.
func CountActive(sessions []Session) int {
	n := 0
	for i := range sessions {
		if sessions[i].IsActive() {
			n++
		}
	}
	return n
}

func elapsedSeconds(startMs, endMs int64) int64 {
	if endMs < startMs {
		return 0
	}
	return (endMs - startMs) / 1000
}

// Millis converts a time to epoch milliseconds.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfDayMillis returns local midnight of the day containing t in epoch ms.
func StartOfDayMillis(t time.Time) int64 {
	return Millis(StartOfDay(t))
}
