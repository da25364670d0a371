package attendance

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/domain/audit"
	"github.com/bersihkilat/erp-backend-go/internal/domain/user"
)

// ActionAttendanceAnnulled tags audit log entries written by the annulment flow.
const ActionAttendanceAnnulled = "ATTENDANCE_ANNULLED"

// AnnulAllowedRoles is a closed allow-list: unknown or future roles are
// unauthorized by default.
var AnnulAllowedRoles = []user.Role{user.RoleAdmin}

// Annulment carries the metadata applied when voiding an attendance record.
type Annulment struct {
	AdminID    int64
	Reason     string
	AnnulledAt time.Time
}

// CanAnnul reports whether a record is still in the active state. The check is
// advisory: callers mutating storage must re-verify status inside the same
// transaction that performs the update.
func CanAnnul(r Attendance) bool {
	return r.Status == StatusActive
}

// IsValidReason reports whether an annulment reason is non-empty after trimming.
func IsValidReason(reason string) bool {
	return strings.TrimSpace(reason) != ""
}

// ApplyAnnulment returns a copy of the record with annulment metadata applied.
// The original event fields are carried over untouched. Callers must have
// checked CanAnnul first; this function does not re-check state.
func ApplyAnnulment(r Attendance, a Annulment) Attendance {
	reason := strings.TrimSpace(a.Reason)
	annulled := Attendance{
		// Original event data, preserved as-is.
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      r.Type,
		Timestamp: r.Timestamp,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		CreatedAt: r.CreatedAt,
		// Annulment metadata.
		Status:         StatusAnnulled,
		AnnulledBy:     &a.AdminID,
		AnnulledReason: &reason,
	}
	annulledAt := a.AnnulledAt
	annulled.AnnulledAt = &annulledAt
	return annulled
}

// FilterActive returns the records still counting toward payroll.
func FilterActive(records []Attendance) []Attendance {
	active := make([]Attendance, 0, len(records))
	for _, r := range records {
		if r.Status == StatusActive {
			active = append(active, r)
		}
	}
	return active
}

// CountActive counts records with active status. The result depends only on
// each record's status, never on ordering.
func CountActive(records []Attendance) int {
	return len(FilterActive(records))
}

// IsAuthorizedToAnnul reports whether a role may annul attendance records.
func IsAuthorizedToAnnul(role user.Role) bool {
	for _, allowed := range AnnulAllowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

// OriginalData is the pre-annulment snapshot embedded in the audit detail.
type OriginalData struct {
	UserID    int64    `json:"user_id"`
	Type      string   `json:"type"`
	Timestamp string   `json:"timestamp"`
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
}

// AnnulmentDetail is the structured payload carried by annulment audit entries.
type AnnulmentDetail struct {
	AttendanceID int64        `json:"attendance_id"`
	AdminID      int64        `json:"admin_id"`
	Reason       string       `json:"reason"`
	AnnulledAt   string       `json:"annulled_at"`
	OriginalData OriginalData `json:"original_data"`
}

// BuildAnnulmentAudit produces the audit entry recording a full pre-mutation
// snapshot of the attendance record being annulled.
func BuildAnnulmentAudit(adminID, attendanceID int64, reason string, annulledAt time.Time, original OriginalData) audit.Entry {
	detail := AnnulmentDetail{
		AttendanceID: attendanceID,
		AdminID:      adminID,
		Reason:       strings.TrimSpace(reason),
		AnnulledAt:   annulledAt.UTC().Format(time.RFC3339),
		OriginalData: original,
	}
	// Marshal cannot fail for this payload shape.
	raw, _ := json.Marshal(detail)

	return audit.Entry{
		UserID: adminID,
		Action: ActionAttendanceAnnulled,
		Detail: string(raw),
	}
}

// annulmentDetailWire mirrors AnnulmentDetail with pointer fields so that
// missing keys are distinguishable from zero values during validation.
type annulmentDetailWire struct {
	AttendanceID *int64        `json:"attendance_id"`
	AdminID      *int64        `json:"admin_id"`
	Reason       *string       `json:"reason"`
	AnnulledAt   *string       `json:"annulled_at"`
	OriginalData *OriginalData `json:"original_data"`
}

// ParseAnnulmentDetail deserializes an audit detail payload. It returns nil,
// not an error, when the payload is malformed or missing a required field:
// audit readers treat a corrupt entry as absent data, never as a crash.
func ParseAnnulmentDetail(detail string) *AnnulmentDetail {
	var wire annulmentDetailWire
	if err := json.Unmarshal([]byte(detail), &wire); err != nil {
		return nil
	}
	if wire.AttendanceID == nil || wire.AdminID == nil || wire.Reason == nil ||
		wire.AnnulledAt == nil || wire.OriginalData == nil {
		return nil
	}
	return &AnnulmentDetail{
		AttendanceID: *wire.AttendanceID,
		AdminID:      *wire.AdminID,
		Reason:       *wire.Reason,
		AnnulledAt:   *wire.AnnulledAt,
		OriginalData: *wire.OriginalData,
	}
}

// ValidateAuditEntry checks that an audit entry records the expected annulment:
// correct action tag, correct actor, and a detail payload whose attendance id,
// admin id, and trimmed reason all match.
func ValidateAuditEntry(entry audit.Entry, expectedAttendanceID, expectedAdminID int64, expectedReason string) bool {
	if entry.Action != ActionAttendanceAnnulled {
		return false
	}
	if entry.UserID != expectedAdminID {
		return false
	}

	detail := ParseAnnulmentDetail(entry.Detail)
	if detail == nil {
		return false
	}

	return detail.AttendanceID == expectedAttendanceID &&
		detail.AdminID == expectedAdminID &&
		detail.Reason == strings.TrimSpace(expectedReason)
}
