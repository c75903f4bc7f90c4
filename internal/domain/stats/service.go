package stats

import (
	"context"
	"time"
)

// StatsService computes dashboard statistics over a week window.
type StatsService interface {
	// ComputeWeeklyStats aggregates attendance and leave data for the
	// week containing now. Empty employeeID aggregates fleet-wide
	// (admin view); scoping is the caller's responsibility. Read-only.
	ComputeWeeklyStats(ctx context.Context, employeeID string, now time.Time) (WeeklyStats, error)
}
