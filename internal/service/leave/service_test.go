package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/staffpulse/attendance-backend-go/internal/domain/auth"
	"github.com/staffpulse/attendance-backend-go/internal/domain/leave"
	"github.com/staffpulse/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
	nextID   int
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = fmt.Sprintf("lr-%d", f.nextID)
	request.CreatedAt = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	f.requests = append(f.requests, request)
	return request, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].EmployeeID == employeeID {
			out = append(out, f.requests[i])
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByStatus(ctx context.Context, employeeID string, status leave.Status) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.Status == status && (employeeID == "" || lr.EmployeeID == employeeID) {
			out = append(out, lr)
		}
	}
	return out, nil
}

func TestLeaveService_Submit_CreatesPendingRequest(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo)
	reason := "family trip"

	result, err := svc.Submit(context.Background(), "emp-1", leave.SubmitLeaveRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
		Reason:    &reason,
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, result.Status)
	assert.Equal(t, "emp-1", result.EmployeeID)
	assert.Equal(t, "2025-04-01", result.StartDate)
	assert.Equal(t, "2025-04-03", result.EndDate)
	assert.NotEmpty(t, result.ID)
	require.Len(t, repo.requests, 1)
	assert.Equal(t, leave.StatusPending, repo.requests[0].Status)
}

func TestLeaveService_Submit_InvalidDates(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{})

	_, err := svc.Submit(context.Background(), "emp-1", leave.SubmitLeaveRequest{
		StartDate: "not-a-date",
		EndDate:   "2025-04-03",
	})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)

	_, err = svc.Submit(context.Background(), "emp-1", leave.SubmitLeaveRequest{
		StartDate: "2025-04-05",
		EndDate:   "2025-04-03",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestLeaveService_Submit_RequiresIdentity(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{})

	_, err := svc.Submit(context.Background(), "", leave.SubmitLeaveRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
	})
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	_, err = svc.GetMyRequests(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestLeaveService_GetPendingRequests_AllEmployees(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo)

	_, err := svc.Submit(context.Background(), "emp-1", leave.SubmitLeaveRequest{StartDate: "2025-04-01", EndDate: "2025-04-01"})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "emp-2", leave.SubmitLeaveRequest{StartDate: "2025-04-02", EndDate: "2025-04-02"})
	require.NoError(t, err)
	repo.requests[0].Status = leave.StatusApproved

	result, err := svc.GetPendingRequests(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "emp-2", result[0].EmployeeID)
	assert.Equal(t, leave.StatusPending, result[0].Status)
}

func TestLeaveService_GetMyRequests_OnlyOwnRequests(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo)

	_, err := svc.Submit(context.Background(), "emp-1", leave.SubmitLeaveRequest{StartDate: "2025-04-01", EndDate: "2025-04-01"})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "emp-2", leave.SubmitLeaveRequest{StartDate: "2025-04-02", EndDate: "2025-04-02"})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "emp-1", leave.SubmitLeaveRequest{StartDate: "2025-04-07", EndDate: "2025-04-08"})
	require.NoError(t, err)

	result, err := svc.GetMyRequests(context.Background(), "emp-1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	for _, lr := range result {
		assert.Equal(t, "emp-1", lr.EmployeeID)
	}
}
