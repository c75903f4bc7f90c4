package leave

import (
	"context"

	"github.com/staffpulse/attendance-backend-go/internal/domain/auth"
	"github.com/staffpulse/attendance-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	repo leave.LeaveRequestRepository
}

func NewLeaveService(repo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{repo: repo}
}

func toResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:         lr.ID,
		EmployeeID: lr.EmployeeID,
		StartDate:  lr.StartDate.Format("2006-01-02"),
		EndDate:    lr.EndDate.Format("2006-01-02"),
		Reason:     lr.Reason,
		Status:     lr.Status,
		CreatedAt:  lr.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Submit implements leave.LeaveService. New requests always start pending;
// approval happens outside this service.
func (s *LeaveServiceImpl) Submit(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if employeeID == "" {
		return leave.LeaveRequestResponse{}, auth.ErrUnauthenticated
	}

	start, end, err := req.Validate()
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := s.repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(created), nil
}

// GetMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	if employeeID == "" {
		return nil, auth.ErrUnauthenticated
	}

	requests, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, len(requests))
	for i, lr := range requests {
		responses[i] = toResponse(lr)
	}
	return responses, nil
}

// GetPendingRequests implements leave.LeaveService. Lists every employee's
// pending requests; the router restricts this to admins.
func (s *LeaveServiceImpl) GetPendingRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.repo.ListByStatus(ctx, "", leave.StatusPending)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, len(requests))
	for i, lr := range requests {
		responses[i] = toResponse(lr)
	}
	return responses, nil
}
