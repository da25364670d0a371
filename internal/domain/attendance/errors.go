package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyAnnulled    = errors.New("attendance record already annulled")
	ErrInvalidReason      = errors.New("annulment reason must be a non-empty string")
	ErrInvalidClockType   = errors.New("clock type must be 'in' or 'out'")
	ErrInvalidTimestamp   = errors.New("timestamp is outside the accepted range")
	ErrNotAuthorized      = errors.New("role is not authorized to annul attendance")
)
