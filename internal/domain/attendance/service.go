package attendance

import (
	"context"

	"github.com/bersihkilat/erp-backend-go/internal/domain/user"
)

type AttendanceService interface {
	Clock(ctx context.Context, userID int64, req ClockRequest) (AttendanceResponse, error)
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
	ListMine(ctx context.Context, userID int64, month, year int) ([]AttendanceResponse, error)
	// Annul voids a record: role check, reason check, then a transactional
	// active -> annulled transition plus an audit entry.
	Annul(ctx context.Context, adminID int64, adminRole user.Role, attendanceID int64, req AnnulRequest) (AttendanceResponse, error)
	// ListAnnulments reads recent annulments back out of the audit log.
	// Corrupt audit payloads are skipped, never surfaced as errors.
	ListAnnulments(ctx context.Context, limit int) ([]AnnulmentAuditResponse, error)
}
