package response

import (
	"errors"
	"net/http"

	"github.com/staffpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpulse/attendance-backend-go/internal/domain/auth"
	"github.com/staffpulse/attendance-backend-go/internal/domain/leave"
	"github.com/staffpulse/attendance-backend-go/internal/domain/user"
	"github.com/staffpulse/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Please log in to continue")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrStoreRead),
		errors.Is(err, attendance.ErrStoreWrite),
		errors.Is(err, leave.ErrStoreRead),
		errors.Is(err, leave.ErrStoreWrite):
		ServiceUnavailable(w, "Storage is temporarily unavailable, please try again")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
