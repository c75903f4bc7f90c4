package http

import (
	"net/http"
	"time"

	"github.com/staffpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpulse/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Today implements AttendanceHandler. Returns today's record and the
// state the client should render the clock in/out button in.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetTodayRecord(r.Context(), ident.UserID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Toggle implements AttendanceHandler. First call of the day clocks in,
// the second clocks out, anything after that is a no-op.
func (h *attendanceHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Toggle(r.Context(), ident.UserID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch result.State {
	case attendance.StateCheckedIn:
		response.Created(w, "Clocked in successfully", result)
	case attendance.StateCompleted:
		response.SuccessWithMessage(w, "Clocked out successfully", result)
	default:
		response.Success(w, result)
	}
}
