package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffpulse/attendance-backend-go/internal/domain/leave"
	"github.com/staffpulse/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	query := `
		INSERT INTO leave_requests (id, employee_id, start_date, end_date, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	request.ID = uuid.NewString()
	err := r.db.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	).Scan(&request.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("%w: %v", leave.ErrStoreWrite, err)
	}

	return request, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, reason, status, created_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, employeeID)
}

// ListByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByStatus(ctx context.Context, employeeID string, status leave.Status) ([]leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, reason, status, created_at
		FROM leave_requests
		WHERE ($1 = '' OR employee_id = $1)
		  AND status = $2
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, employeeID, status)
}

func (r *leaveRequestRepository) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", leave.ErrStoreRead, err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", leave.ErrStoreRead, err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", leave.ErrStoreRead, err)
	}

	return requests, nil
}
