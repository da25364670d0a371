package attendance

import "time"

// ClockType enum
type ClockType string

const (
	ClockIn  ClockType = "in"
	ClockOut ClockType = "out"
)

// Status enum. The only transition is StatusActive -> StatusAnnulled; there is
// no way back.
type Status string

const (
	StatusActive   Status = "active"
	StatusAnnulled Status = "annulled"
)

// Attendance is a single clock event. Timestamp is a UTC instant; which local
// day it belongs to is decided by the timezone package, never by the raw UTC
// calendar date.
//
// Invariant: the annulment fields (AnnulledBy, AnnulledAt, AnnulledReason) are
// all non-nil iff Status is StatusAnnulled, and annulment never touches the
// original event fields.
type Attendance struct {
	ID             int64
	UserID         int64
	Type           ClockType
	Timestamp      time.Time
	Latitude       *float64
	Longitude      *float64
	Status         Status
	AnnulledBy     *int64
	AnnulledAt     *time.Time
	AnnulledReason *string
	CreatedAt      time.Time

	// Joined fields
	UserName *string
}

// IsValidClockType reports whether s is one of the known clock event types.
func IsValidClockType(s string) bool {
	return ClockType(s) == ClockIn || ClockType(s) == ClockOut
}
