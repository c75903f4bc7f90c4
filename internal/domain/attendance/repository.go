package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Day windows are half-open [start, end); week windows are inclusive on
// both ends, matching how the dashboard buckets records.
type AttendanceRepository interface {
	// Create inserts a new record with CheckIn set and CheckOut absent.
	// The store assigns the id.
	Create(ctx context.Context, employeeID string, checkIn time.Time) (Attendance, error)

	// SetCheckOut sets CheckOut on an existing record, keyed by id.
	// Called at most once per record.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) (Attendance, error)

	// GetByEmployeeAndDay returns the record whose created_at falls in
	// [dayStart, dayEnd) for the employee, or nil when there is none.
	// If duplicates exist the earliest created_at wins.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*Attendance, error)

	// ListInWindow returns records with created_at in [start, end],
	// earliest first. Empty employeeID means all employees.
	ListInWindow(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}
