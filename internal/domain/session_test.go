package domain

import (
	"testing"
	"time"
)

func at(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func TestNewSession(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

	s := NewSession("task_1", "cat_1", now)

	if !s.IsActive() {
		t.Error("new session should be active")
	}
	if s.TaskID != "task_1" {
		t.Errorf("TaskID = %q, want task_1", s.TaskID)
	}
	if s.CategoryID != "cat_1" {
		t.Errorf("CategoryID = %q, want cat_1", s.CategoryID)
	}
	if s.StartTime != Millis(now) {
		t.Errorf("StartTime = %d, want %d", s.StartTime, Millis(now))
	}
	if s.DurationSeconds != 0 {
		t.Errorf("DurationSeconds = %d, want 0", s.DurationSeconds)
	}
	if s.Date != StartOfDayMillis(now) {
		t.Errorf("Date = %d, want local midnight %d", s.Date, StartOfDayMillis(now))
	}
	if s.ID == "" {
		t.Error("ID should not be empty")
	}
}

func TestSession_Stop(t *testing.T) {
	s := NewSession("task_1", "cat_1", at(1000))

	stopped := s.Stop(at(61000))

	if stopped.IsActive() {
		t.Error("stopped session should not be active")
	}
	if stopped.EndTime == nil || *stopped.EndTime != 61000 {
		t.Errorf("EndTime = %v, want 61000", stopped.EndTime)
	}
	if stopped.DurationSeconds != 60 {
		t.Errorf("DurationSeconds = %d, want 60", stopped.DurationSeconds)
	}
	// Original session value is untouched
	if !s.IsActive() {
		t.Error("Stop must not mutate the receiver")
	}
}

func TestSession_Stop_FloorsSubSecond(t *testing.T) {
	s := NewSession("task_1", "cat_1", at(1000))

	stopped := s.Stop(at(2999))

	if stopped.DurationSeconds != 1 {
		t.Errorf("DurationSeconds = %d, want 1 (floor)", stopped.DurationSeconds)
	}
}

func TestSession_Stop_Idempotent(t *testing.T) {
	s := NewSession("task_1", "cat_1", at(1000))
	stopped := s.Stop(at(61000))

	again := stopped.Stop(at(120000))

	if again.DurationSeconds != 60 {
		t.Errorf("DurationSeconds changed to %d on second stop", again.DurationSeconds)
	}
	if *again.EndTime != 61000 {
		t.Errorf("EndTime changed to %d on second stop", *again.EndTime)
	}
}

func TestSession_Stop_ClampsClockSkew(t *testing.T) {
	s := NewSession("task_1", "cat_1", at(5000))

	stopped := s.Stop(at(1000)) // clock moved backwards

	if stopped.DurationSeconds != 0 {
		t.Errorf("DurationSeconds = %d, want 0 (clamped)", stopped.DurationSeconds)
	}
}

func TestSession_EffectiveDuration(t *testing.T) {
	active := NewSession("task_1", "cat_1", at(1000))
	closed := active.Stop(at(31000))

	tests := []struct {
		name string
		s    Session
		now  time.Time
		want int64
	}{
		{"active computes live", active, at(11000), 10},
		{"active agrees with stop at same instant", active, at(31000), 30},
		{"closed uses stored duration", closed, at(999000), 30},
		{"active clamps clock skew", active, at(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.EffectiveDuration(tt.now); got != tt.want {
				t.Errorf("EffectiveDuration() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestActiveSession(t *testing.T) {
	a := NewSession("task_1", "cat_1", at(1000))
	b := a.Stop(at(2000))

	if got := ActiveSession(nil); got != nil {
		t.Errorf("ActiveSession(nil) = %v, want nil", got)
	}
	if got := ActiveSession([]Session{b}); got != nil {
		t.Error("ActiveSession should be nil when all sessions are closed")
	}

	sessions := []Session{b, a}
	got := ActiveSession(sessions)
	if got == nil || got.ID != a.ID {
		t.Fatalf("ActiveSession returned %v, want session %s", got, a.ID)
	}

	// Returned pointer aliases the slice so callers can replace in place.
	*got = got.Stop(at(3000))
	if sessions[1].IsActive() {
		t.Error("replacing through the returned pointer should close the slice entry")
	}
}

func TestActiveSession_DefensiveFirstMatch(t *testing.T) {
	// Invariant violation: two running sessions. The first is returned.
	a := NewSession("task_1", "cat_1", at(1000))
	b := NewSession("task_2", "cat_2", at(2000))
	sessions := []Session{a, b}

	got := ActiveSession(sessions)
	if got == nil || got.TaskID != "task_1" {
		t.Errorf("ActiveSession = %v, want first match (task_1)", got)
	}
	if n := CountActive(sessions); n != 2 {
		t.Errorf("CountActive = %d, want 2", n)
	}
}

func TestStartOfDayMillis(t *testing.T) {
	noon := time.Date(2026, 3, 10, 12, 34, 56, 789e6, time.Local)
	midnight := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	if got := StartOfDayMillis(noon); got != Millis(midnight) {
		t.Errorf("StartOfDayMillis = %d, want %d", got, Millis(midnight))
	}
	if got := StartOfDayMillis(midnight); got != Millis(midnight) {
		t.Error("StartOfDayMillis at midnight should be identity")
	}
}
