package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpulse/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, employeeID string, checkIn time.Time) (attendance.Attendance, error) {
	query := `
		INSERT INTO attendances (id, employee_id, check_in, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	att := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CheckIn:    checkIn,
	}
	err := a.db.QueryRow(ctx, query, att.ID, att.EmployeeID, att.CheckIn).Scan(&att.CreatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("%w: %v", attendance.ErrStoreWrite, err)
	}

	return att, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	query := `
		UPDATE attendances
		SET check_out = $2
		WHERE id = $1 AND check_out IS NULL
		RETURNING id, employee_id, check_in, check_out, created_at
	`

	var att attendance.Attendance
	err := a.db.QueryRow(ctx, query, id, checkOut).Scan(
		&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut, &att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("%w: %v", attendance.ErrStoreWrite, err)
	}

	return att, nil
}

// GetByEmployeeAndDay implements attendance.AttendanceRepository.
// Ordering by created_at makes the earliest record win deterministically
// if the per-day uniqueness invariant was ever violated upstream.
func (a *attendanceRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*attendance.Attendance, error) {
	query := `
		SELECT id, employee_id, check_in, check_out, created_at
		FROM attendances
		WHERE employee_id = $1
		  AND created_at >= $2
		  AND created_at < $3
		ORDER BY created_at ASC
		LIMIT 1
	`

	var att attendance.Attendance
	err := a.db.QueryRow(ctx, query, employeeID, dayStart, dayEnd).Scan(
		&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut, &att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no attendance for this day yet
		}
		return nil, fmt.Errorf("%w: %v", attendance.ErrStoreRead, err)
	}

	return &att, nil
}

// ListInWindow implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListInWindow(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT id, employee_id, check_in, check_out, created_at
		FROM attendances
		WHERE ($1 = '' OR employee_id = $1)
		  AND created_at >= $2
		  AND created_at <= $3
		ORDER BY created_at ASC
	`

	rows, err := a.db.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStoreRead, err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut, &att.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", attendance.ErrStoreRead, err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStoreRead, err)
	}

	return records, nil
}
