package leave

import (
	"time"
)

// Status is the closed leave request status enum. Only approved requests
// count against the leave balance.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     Status
	CreatedAt  time.Time
}
