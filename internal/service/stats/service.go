package stats

import (
	"context"
	"time"

	"github.com/staffpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpulse/attendance-backend-go/internal/domain/leave"
	"github.com/staffpulse/attendance-backend-go/internal/domain/stats"
	"golang.org/x/sync/errgroup"
)

type StatsServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	allowance      int
	loc            *time.Location
}

func NewStatsService(attendanceRepo attendance.AttendanceRepository, leaveRepo leave.LeaveRequestRepository, annualLeaveAllowance int, loc *time.Location) stats.StatsService {
	if loc == nil {
		loc = time.Local
	}
	return &StatsServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		allowance:      annualLeaveAllowance,
		loc:            loc,
	}
}

// weekWindow returns the inclusive [Sunday 00:00:00, Saturday 23:59:59.999...]
// interval containing now. Weeks start on Sunday, same as the dashboard
// client's locale default.
func (s *StatsServiceImpl) weekWindow(now time.Time) (time.Time, time.Time) {
	local := now.In(s.loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	start := day.AddDate(0, 0, -int(local.Weekday()))
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// ComputeWeeklyStats implements stats.StatsService. Attendance and leave
// data are fetched in parallel; the computation itself is pure.
func (s *StatsServiceImpl) ComputeWeeklyStats(ctx context.Context, employeeID string, now time.Time) (stats.WeeklyStats, error) {
	start, end := s.weekWindow(now)

	var (
		records  []attendance.Attendance
		approved []leave.LeaveRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListInWindow(gctx, employeeID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		approved, err = s.leaveRepo.ListByStatus(gctx, employeeID, leave.StatusApproved)
		return err
	})
	if err := g.Wait(); err != nil {
		return stats.WeeklyStats{}, err
	}

	var totalHours float64
	for _, att := range records {
		if att.CheckOut != nil {
			totalHours += att.CheckOut.Sub(att.CheckIn).Hours()
		}
	}

	// Divide by every fetched record, not just the clocked-out ones:
	// open records dilute the average. Divisor 1 keeps the empty week at
	// an average of 0 instead of NaN.
	divisor := float64(len(records))
	if divisor == 0 {
		divisor = 1
	}

	return stats.WeeklyStats{
		WeeklyAttendanceCount: len(records),
		AverageHoursPerDay:    totalHours / divisor,
		LeaveBalance:          s.allowance - len(approved),
	}, nil
}
