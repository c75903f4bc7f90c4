package leave

import (
	"context"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create inserts a new leave request. The store assigns the id.
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// ListByEmployee returns all requests for one employee, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListByStatus returns requests with the given status. Empty
	// employeeID means all employees (admin scope).
	ListByStatus(ctx context.Context, employeeID string, status Status) ([]LeaveRequest, error)
}
