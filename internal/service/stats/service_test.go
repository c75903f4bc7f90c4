package stats

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/staffpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpulse/attendance-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	listErr error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, employeeID string, checkIn time.Time) (attendance.Attendance, error) {
	panic("not used by stats")
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	panic("not used by stats")
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*attendance.Attendance, error) {
	panic("not used by stats")
}

func (f *fakeAttendanceRepo) ListInWindow(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []attendance.Attendance
	for _, att := range f.records {
		if employeeID != "" && att.EmployeeID != employeeID {
			continue
		}
		if att.CreatedAt.Before(start) || att.CreatedAt.After(end) {
			continue
		}
		out = append(out, att)
	}
	return out, nil
}

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
	listErr  error
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	panic("not used by stats")
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	panic("not used by stats")
}

func (f *fakeLeaveRepo) ListByStatus(ctx context.Context, employeeID string, status leave.Status) ([]leave.LeaveRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []leave.LeaveRequest
	for _, lr := range f.requests {
		if employeeID != "" && lr.EmployeeID != employeeID {
			continue
		}
		if lr.Status != status {
			continue
		}
		out = append(out, lr)
	}
	return out, nil
}

// Wednesday in the week starting Sunday 2025-03-09.
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func record(employeeID string, checkIn time.Time, workedHours float64) attendance.Attendance {
	att := attendance.Attendance{
		ID:         fmt.Sprintf("att-%s-%d", employeeID, checkIn.Unix()),
		EmployeeID: employeeID,
		CheckIn:    checkIn,
		CreatedAt:  checkIn,
	}
	if workedHours > 0 {
		out := checkIn.Add(time.Duration(workedHours * float64(time.Hour)))
		att.CheckOut = &out
	}
	return att
}

func TestStatsService_EmptyWeek(t *testing.T) {
	svc := NewStatsService(&fakeAttendanceRepo{}, &fakeLeaveRepo{}, 20, time.UTC)

	result, err := svc.ComputeWeeklyStats(context.Background(), "emp-1", testNow)

	require.NoError(t, err)
	assert.Equal(t, 0, result.WeeklyAttendanceCount)
	assert.Equal(t, 0.0, result.AverageHoursPerDay)
	assert.Equal(t, 20, result.LeaveBalance)
}

func TestStatsService_PartialRecordsDiluteAverage(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("emp-1", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), 8),
		record("emp-1", time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC), 6),
		record("emp-1", time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), 0), // no clock-out yet
	}}
	svc := NewStatsService(attRepo, &fakeLeaveRepo{}, 20, time.UTC)

	result, err := svc.ComputeWeeklyStats(context.Background(), "emp-1", testNow)

	require.NoError(t, err)
	assert.Equal(t, 3, result.WeeklyAttendanceCount)
	// (8+6)/3, not (8+6)/2: the open record counts in the divisor.
	assert.InDelta(t, 4.6667, result.AverageHoursPerDay, 0.001)
}

func TestStatsService_LeaveBalance(t *testing.T) {
	cases := []struct {
		name     string
		approved int
		pending  int
		want     int
	}{
		{"no requests", 0, 0, 20},
		{"five approved", 5, 0, 15},
		{"pending does not count", 3, 4, 17},
		{"unfloored negative balance", 25, 0, -5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			leaveRepo := &fakeLeaveRepo{}
			for i := 0; i < c.approved; i++ {
				leaveRepo.requests = append(leaveRepo.requests, leave.LeaveRequest{
					ID: fmt.Sprintf("lr-a-%d", i), EmployeeID: "emp-1", Status: leave.StatusApproved,
				})
			}
			for i := 0; i < c.pending; i++ {
				leaveRepo.requests = append(leaveRepo.requests, leave.LeaveRequest{
					ID: fmt.Sprintf("lr-p-%d", i), EmployeeID: "emp-1", Status: leave.StatusPending,
				})
			}
			svc := NewStatsService(&fakeAttendanceRepo{}, leaveRepo, 20, time.UTC)

			result, err := svc.ComputeWeeklyStats(context.Background(), "emp-1", testNow)

			require.NoError(t, err)
			assert.Equal(t, c.want, result.LeaveBalance)
		})
	}
}

func TestStatsService_WeekWindowBoundaries(t *testing.T) {
	weekStart := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) // Sunday
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("emp-1", weekStart.Add(-time.Minute), 8), // previous Saturday, out
		record("emp-1", weekStart, 8),                   // Sunday midnight, in
		record("emp-1", weekStart.AddDate(0, 0, 7).Add(-time.Second), 8), // Saturday night, in
		record("emp-1", weekStart.AddDate(0, 0, 7), 8),                   // next Sunday, out
	}}
	svc := NewStatsService(attRepo, &fakeLeaveRepo{}, 20, time.UTC)

	result, err := svc.ComputeWeeklyStats(context.Background(), "emp-1", testNow)

	require.NoError(t, err)
	assert.Equal(t, 2, result.WeeklyAttendanceCount)
}

func TestStatsService_AdminViewAggregatesAllEmployees(t *testing.T) {
	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("emp-1", monday, 8),
		record("emp-2", monday, 4),
		record("emp-3", monday, 0),
	}}
	svc := NewStatsService(attRepo, &fakeLeaveRepo{}, 20, time.UTC)

	scoped, err := svc.ComputeWeeklyStats(context.Background(), "emp-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, scoped.WeeklyAttendanceCount)
	assert.InDelta(t, 8.0, scoped.AverageHoursPerDay, 0.001)

	fleet, err := svc.ComputeWeeklyStats(context.Background(), "", testNow)
	require.NoError(t, err)
	assert.Equal(t, 3, fleet.WeeklyAttendanceCount)
	assert.InDelta(t, 4.0, fleet.AverageHoursPerDay, 0.001)
}

func TestStatsService_Idempotent(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("emp-1", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), 7.5),
	}}
	leaveRepo := &fakeLeaveRepo{requests: []leave.LeaveRequest{
		{ID: "lr-1", EmployeeID: "emp-1", Status: leave.StatusApproved},
	}}
	svc := NewStatsService(attRepo, leaveRepo, 20, time.UTC)

	first, err := svc.ComputeWeeklyStats(context.Background(), "emp-1", testNow)
	require.NoError(t, err)
	second, err := svc.ComputeWeeklyStats(context.Background(), "emp-1", testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStatsService_FetchErrorsPropagate(t *testing.T) {
	readErr := fmt.Errorf("%w: %v", attendance.ErrStoreRead, errors.New("timeout"))
	svc := NewStatsService(&fakeAttendanceRepo{listErr: readErr}, &fakeLeaveRepo{}, 20, time.UTC)

	_, err := svc.ComputeWeeklyStats(context.Background(), "emp-1", testNow)
	assert.ErrorIs(t, err, attendance.ErrStoreRead)

	leaveErr := fmt.Errorf("%w: %v", leave.ErrStoreRead, errors.New("timeout"))
	svc = NewStatsService(&fakeAttendanceRepo{}, &fakeLeaveRepo{listErr: leaveErr}, 20, time.UTC)

	_, err = svc.ComputeWeeklyStats(context.Background(), "emp-1", testNow)
	assert.ErrorIs(t, err, leave.ErrStoreRead)
}
