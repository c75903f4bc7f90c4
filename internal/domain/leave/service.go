package leave

import (
	"context"
)

// LeaveService defines business logic for leave request submission.
// Approval and rejection are handled elsewhere; this service only creates
// pending requests and lists what an employee has submitted.
type LeaveService interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	GetMyRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	GetPendingRequests(ctx context.Context) ([]LeaveRequestResponse, error)
}
