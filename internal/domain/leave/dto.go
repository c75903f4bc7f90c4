package leave

import (
	"time"

	"github.com/staffpulse/attendance-backend-go/internal/pkg/validator"
)

// SubmitLeaveRequest is the payload for submitting a new leave request.
// New requests always start out pending.
type SubmitLeaveRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`
}

// Validate checks the submit payload and returns the parsed date range.
func (r SubmitLeaveRequest) Validate() (start, end time.Time, err error) {
	var errs validator.ValidationErrors

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, ok = validator.IsValidDate(r.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}

// LeaveRequestResponse is the wire shape of a leave request.
type LeaveRequestResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
	Status     Status  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}
