package attendance

import (
	"testing"
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func sampleActive() Attendance {
	return Attendance{
		ID:        42,
		UserID:    7,
		Type:      ClockIn,
		Timestamp: time.Date(2025, 3, 10, 23, 5, 0, 0, time.UTC),
		Latitude:  float64Ptr(-8.65),
		Longitude: float64Ptr(115.21),
		Status:    StatusActive,
		CreatedAt: time.Date(2025, 3, 10, 23, 5, 1, 0, time.UTC),
	}
}

func TestCanAnnul(t *testing.T) {
	record := sampleActive()
	assert.True(t, CanAnnul(record))

	record.Status = StatusAnnulled
	assert.False(t, CanAnnul(record))
}

func TestIsValidReason(t *testing.T) {
	assert.False(t, IsValidReason(""))
	assert.False(t, IsValidReason("   "))
	assert.False(t, IsValidReason("\t\n"))
	assert.True(t, IsValidReason("salah input jam"))
	assert.True(t, IsValidReason("  duplicate  "))
}

func TestApplyAnnulmentPreservesOriginalEvent(t *testing.T) {
	record := sampleActive()
	annulledAt := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)

	got := ApplyAnnulment(record, Annulment{
		AdminID:    1,
		Reason:     "  salah input jam  ",
		AnnulledAt: annulledAt,
	})

	// Original event data untouched.
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.UserID, got.UserID)
	assert.Equal(t, record.Type, got.Type)
	assert.True(t, got.Timestamp.Equal(record.Timestamp))
	assert.Equal(t, record.Latitude, got.Latitude)
	assert.Equal(t, record.Longitude, got.Longitude)

	// Annulment metadata applied, reason trimmed.
	assert.Equal(t, StatusAnnulled, got.Status)
	require.NotNil(t, got.AnnulledBy)
	assert.Equal(t, int64(1), *got.AnnulledBy)
	require.NotNil(t, got.AnnulledAt)
	assert.True(t, got.AnnulledAt.Equal(annulledAt))
	require.NotNil(t, got.AnnulledReason)
	assert.Equal(t, "salah input jam", *got.AnnulledReason)
}

func TestCountActiveIgnoresOrdering(t *testing.T) {
	active := sampleActive()
	annulled := sampleActive()
	annulled.ID = 43
	annulled.Status = StatusAnnulled
	other := sampleActive()
	other.ID = 44

	assert.Equal(t, 2, CountActive([]Attendance{active, annulled, other}))
	assert.Equal(t, 2, CountActive([]Attendance{annulled, other, active}))
	assert.Equal(t, 2, CountActive([]Attendance{other, active, annulled}))
	assert.Equal(t, 0, CountActive(nil))
}

func TestFilterActive(t *testing.T) {
	annulled := sampleActive()
	annulled.Status = StatusAnnulled

	got := FilterActive([]Attendance{sampleActive(), annulled})
	require.Len(t, got, 1)
	assert.Equal(t, StatusActive, got[0].Status)
}

func TestIsAuthorizedToAnnul(t *testing.T) {
	assert.True(t, IsAuthorizedToAnnul(user.RoleAdmin))
	assert.False(t, IsAuthorizedToAnnul(user.RoleGudang))
	assert.False(t, IsAuthorizedToAnnul(user.RoleProduksi))
	assert.False(t, IsAuthorizedToAnnul(user.RoleKurir))
	assert.False(t, IsAuthorizedToAnnul(user.Role("supervisor")))
}

func TestBuildAnnulmentAuditRoundTrip(t *testing.T) {
	annulledAt := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)
	original := OriginalData{
		UserID:    7,
		Type:      "in",
		Timestamp: "2025-03-10T23:05:00Z",
		Latitude:  float64Ptr(-8.65),
		Longitude: float64Ptr(115.21),
	}

	entry := BuildAnnulmentAudit(1, 42, "  salah input jam  ", annulledAt, original)

	assert.Equal(t, ActionAttendanceAnnulled, entry.Action)
	assert.Equal(t, int64(1), entry.UserID)

	detail := ParseAnnulmentDetail(entry.Detail)
	require.NotNil(t, detail)
	assert.Equal(t, int64(42), detail.AttendanceID)
	assert.Equal(t, int64(1), detail.AdminID)
	assert.Equal(t, "salah input jam", detail.Reason)
	assert.Equal(t, "2025-03-11T02:00:00Z", detail.AnnulledAt)
	assert.Equal(t, original, detail.OriginalData)
}

func TestParseAnnulmentDetailRejectsMalformed(t *testing.T) {
	assert.Nil(t, ParseAnnulmentDetail(""))
	assert.Nil(t, ParseAnnulmentDetail("not json"))
	assert.Nil(t, ParseAnnulmentDetail("{}"))
	// Missing original_data.
	assert.Nil(t, ParseAnnulmentDetail(`{"attendance_id":1,"admin_id":2,"reason":"x","annulled_at":"2025-03-11T02:00:00Z"}`))
	// Missing reason.
	assert.Nil(t, ParseAnnulmentDetail(`{"attendance_id":1,"admin_id":2,"annulled_at":"2025-03-11T02:00:00Z","original_data":{"user_id":7,"type":"in","timestamp":"t","lat":null,"lng":null}}`))
}

func TestValidateAuditEntry(t *testing.T) {
	entry := BuildAnnulmentAudit(1, 42, "duplicate entry", time.Now().UTC(), OriginalData{UserID: 7, Type: "in"})

	assert.True(t, ValidateAuditEntry(entry, 42, 1, "duplicate entry"))
	assert.True(t, ValidateAuditEntry(entry, 42, 1, "  duplicate entry  "), "expected reason is compared trimmed")
	assert.False(t, ValidateAuditEntry(entry, 99, 1, "duplicate entry"), "wrong attendance id")
	assert.False(t, ValidateAuditEntry(entry, 42, 2, "duplicate entry"), "wrong admin id")
	assert.False(t, ValidateAuditEntry(entry, 42, 1, "other reason"))

	wrongAction := entry
	wrongAction.Action = "USER_UPDATED"
	assert.False(t, ValidateAuditEntry(wrongAction, 42, 1, "duplicate entry"))

	corrupt := entry
	corrupt.Detail = "{"
	assert.False(t, ValidateAuditEntry(corrupt, 42, 1, "duplicate entry"))
}
