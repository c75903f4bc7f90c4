package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// Store failures. Wrapped around the underlying cause so callers can
	// match with errors.Is while logs keep the detail.
	ErrStoreRead  = errors.New("attendance store read failed")
	ErrStoreWrite = errors.New("attendance store write failed")
)
