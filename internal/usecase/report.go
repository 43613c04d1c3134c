package usecase

import (
	"context"
	"fmt"

	"studyflow/internal/domain"
	"studyflow/internal/stats"
)

// ReportInput contains the parameters for building a report.
type ReportInput struct {
	TaskFilter string // Restrict the report to one task (optional)
	WindowDays int    // domain.WindowWeek or domain.WindowMonth
}

// ReportOutput contains the chart series and ranked breakdown for a window,
// plus the tasks and categories needed to label and color them.
type ReportOutput struct {
	Series     []stats.DayBucket
	Breakdown  []stats.BreakdownItem
	Tasks      []domain.Task
	Categories []domain.Category
	WindowDays int
}

// Report is the use case for the analytics view.
type Report struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewReport creates a new Report use case.
func NewReport(store domain.SnapshotStore, clock domain.Clock) *Report {
	return &Report{store: store, clock: clock}
}

// Execute builds the report for the given window.
func (uc *Report) Execute(_ context.Context, in ReportInput) (*ReportOutput, error) {
	if in.WindowDays != domain.WindowWeek && in.WindowDays != domain.WindowMonth {
		return nil, fmt.Errorf("%d days: %w", in.WindowDays, domain.ErrInvalidWindow)
	}

	data, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	windowStart := domain.StartOfDay(now.AddDate(0, 0, -in.WindowDays))

	return &ReportOutput{
		Series:     stats.ChartSeries(data.Sessions, data.Tasks, in.WindowDays, now, in.TaskFilter),
		Breakdown:  stats.Breakdown(data.Sessions, in.TaskFilter, windowStart, now),
		Tasks:      data.Tasks,
		Categories: data.Categories,
		WindowDays: in.WindowDays,
	}, nil
}
