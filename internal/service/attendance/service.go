package attendance

import (
	"context"
	"sync"
	"time"

	"github.com/staffpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpulse/attendance-backend-go/internal/domain/auth"
)

type AttendanceServiceImpl struct {
	repo  attendance.AttendanceRepository
	loc   *time.Location
	locks sync.Map // employee id -> *sync.Mutex
}

func NewAttendanceService(repo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceServiceImpl{repo: repo, loc: loc}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toTodayResponse(att *attendance.Attendance) attendance.TodayResponse {
	state := attendance.StateOf(att)
	resp := attendance.TodayResponse{
		State:      state,
		Label:      state.Label(),
		Actionable: state.Actionable(),
	}
	if att != nil {
		resp.Record = &attendance.RecordResponse{
			ID:         att.ID,
			EmployeeID: att.EmployeeID,
			CheckIn:    att.CheckIn.Format("2006-01-02 15:04:05"),
			CheckOut:   timePtrToString(att.CheckOut),
			CreatedAt:  att.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return resp
}

// dayWindow returns the half-open [midnight, midnight+24h) interval
// containing now, in the service's timezone. Lookups and inserts both go
// through this window so a second same-day clock-in cannot slip past it.
func (s *AttendanceServiceImpl) dayWindow(now time.Time) (time.Time, time.Time) {
	local := now.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return start, start.Add(24 * time.Hour)
}

// GetTodayRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayRecord(ctx context.Context, employeeID string, now time.Time) (attendance.TodayResponse, error) {
	if employeeID == "" {
		return attendance.TodayResponse{}, auth.ErrUnauthenticated
	}

	dayStart, dayEnd := s.dayWindow(now)
	record, err := s.repo.GetByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	return toTodayResponse(record), nil
}

// Toggle implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Toggle(ctx context.Context, employeeID string, now time.Time) (attendance.TodayResponse, error) {
	if employeeID == "" {
		return attendance.TodayResponse{}, auth.ErrUnauthenticated
	}

	// The read-decide-write sequence must not interleave for the same
	// employee or duplicate same-day clock-ins become possible.
	mu := s.lockFor(employeeID)
	mu.Lock()
	defer mu.Unlock()

	dayStart, dayEnd := s.dayWindow(now)
	record, err := s.repo.GetByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	switch attendance.StateOf(record) {
	case attendance.StateNoRecord:
		created, err := s.repo.Create(ctx, employeeID, now)
		if err != nil {
			return attendance.TodayResponse{}, err
		}
		return toTodayResponse(&created), nil

	case attendance.StateCheckedIn:
		updated, err := s.repo.SetCheckOut(ctx, record.ID, now)
		if err != nil {
			return attendance.TodayResponse{}, err
		}
		return toTodayResponse(&updated), nil

	default:
		// Completed is terminal for the day: report it, mutate nothing.
		return toTodayResponse(record), nil
	}
}

func (s *AttendanceServiceImpl) lockFor(employeeID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(employeeID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
