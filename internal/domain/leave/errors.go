package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrInvalidStatus        = errors.New("unknown leave request status")

	ErrStoreRead  = errors.New("leave store read failed")
	ErrStoreWrite = errors.New("leave store write failed")
)
