package attendance

import (
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	Type      string   `json:"type"` // "in" or "out"
	Timestamp string   `json:"timestamp,omitempty"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidClockType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'in' or 'out'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AnnulRequest struct {
	Reason string `json:"reason"`
}

func (r *AnnulRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidReason(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	UserName       *string    `json:"user_name,omitempty"`
	Type           string     `json:"type"`
	Timestamp      time.Time  `json:"timestamp"`
	Latitude       *float64   `json:"lat,omitempty"`
	Longitude      *float64   `json:"lng,omitempty"`
	Status         string     `json:"status"`
	AnnulledBy     *int64     `json:"annulled_by,omitempty"`
	AnnulledAt     *time.Time `json:"annulled_at,omitempty"`
	AnnulledReason *string    `json:"annulled_reason,omitempty"`
}

// AnnulmentAuditResponse is one annulment pulled back out of the audit log,
// with the detail payload already decoded.
type AnnulmentAuditResponse struct {
	ID           int64        `json:"id"`
	AttendanceID int64        `json:"attendance_id"`
	AdminID      int64        `json:"admin_id"`
	Reason       string       `json:"reason"`
	AnnulledAt   string       `json:"annulled_at"`
	OriginalData OriginalData `json:"original_data"`
	CreatedAt    time.Time    `json:"created_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		UserName:       a.UserName,
		Type:           string(a.Type),
		Timestamp:      a.Timestamp,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		Status:         string(a.Status),
		AnnulledBy:     a.AnnulledBy,
		AnnulledAt:     a.AnnulledAt,
		AnnulledReason: a.AnnulledReason,
	}
}
