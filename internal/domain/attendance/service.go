package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for daily attendance. Identity
// is always passed in explicitly; the service never reads session state.
type AttendanceService interface {
	// GetTodayRecord returns today's attendance state for the employee.
	// No side effects.
	GetTodayRecord(ctx context.Context, employeeID string, now time.Time) (TodayResponse, error)

	// Toggle advances the per-day state machine: first call clocks in,
	// second call clocks out, any further call is a no-op that reports
	// the completed state. Calls are serialized per employee.
	Toggle(ctx context.Context, employeeID string, now time.Time) (TodayResponse, error)
}
