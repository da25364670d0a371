package attendance

import (
	"context"
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/domain/attendance"
	"github.com/bersihkilat/erp-backend-go/internal/domain/audit"
	"github.com/bersihkilat/erp-backend-go/internal/domain/user"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/database"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/timezone"
	"github.com/bersihkilat/erp-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	auditRepo      audit.AuditRepository
	userRepo       user.UserRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	auditRepo audit.AuditRepository,
	userRepo user.UserRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		auditRepo:      auditRepo,
		userRepo:       userRepo,
	}
}

// Clock records a clock-in or clock-out event. The timestamp defaults to now;
// a caller-supplied timestamp must pass the sanity window check.
func (s *AttendanceServiceImpl) Clock(ctx context.Context, userID int64, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ts := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, err := timezone.ParseInstant(req.Timestamp)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		if !timezone.IsValidInstant(parsed) {
			return attendance.AttendanceResponse{}, attendance.ErrInvalidTimestamp
		}
		ts = parsed.UTC()
	}

	record := attendance.Attendance{
		UserID:    userID,
		Type:      attendance.ClockType(req.Type),
		Timestamp: ts,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    attendance.StatusActive,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	startUTC, endUTC, err := timezone.DayBoundaries(date)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListBetween(ctx, startUTC, endUTC)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) ListMine(ctx context.Context, userID int64, month, year int) ([]attendance.AttendanceResponse, error) {
	startUTC, endUTC, err := timezone.MonthBoundaries(month, year)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByUserBetween(ctx, userID, startUTC, endUTC)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

// Annul voids an attendance record. The CanAnnul pre-check is advisory only;
// the decisive check is the conditional UPDATE inside the transaction, which
// also writes the audit snapshot so both either land or neither does.
func (s *AttendanceServiceImpl) Annul(ctx context.Context, adminID int64, adminRole user.Role, attendanceID int64, req attendance.AnnulRequest) (attendance.AttendanceResponse, error) {
	if !attendance.IsAuthorizedToAnnul(adminRole) {
		return attendance.AttendanceResponse{}, attendance.ErrNotAuthorized
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !attendance.CanAnnul(record) {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyAnnulled
	}

	annulledAt := time.Now().UTC()
	annulment := attendance.Annulment{
		AdminID:    adminID,
		Reason:     req.Reason,
		AnnulledAt: annulledAt,
	}

	entry := attendance.BuildAnnulmentAudit(adminID, record.ID, req.Reason, annulledAt, attendance.OriginalData{
		UserID:    record.UserID,
		Type:      string(record.Type),
		Timestamp: record.Timestamp.UTC().Format(time.RFC3339),
		Latitude:  record.Latitude,
		Longitude: record.Longitude,
	})

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Conditional transition: loses cleanly if another annulment won the race.
		if err := s.attendanceRepo.Annul(txCtx, record.ID, adminID, annulledAt, req.Reason); err != nil {
			return err
		}

		_, err := s.auditRepo.Append(txCtx, entry)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(attendance.ApplyAnnulment(record, annulment)), nil
}

// ListAnnulments implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAnnulments(ctx context.Context, limit int) ([]attendance.AnnulmentAuditResponse, error) {
	entries, err := s.auditRepo.ListByAction(ctx, attendance.ActionAttendanceAnnulled, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AnnulmentAuditResponse, 0, len(entries))
	for _, e := range entries {
		detail := attendance.ParseAnnulmentDetail(e.Detail)
		if detail == nil {
			// A corrupt entry reads as absent data.
			continue
		}
		responses = append(responses, attendance.AnnulmentAuditResponse{
			ID:           e.ID,
			AttendanceID: detail.AttendanceID,
			AdminID:      detail.AdminID,
			Reason:       detail.Reason,
			AnnulledAt:   detail.AnnulledAt,
			OriginalData: detail.OriginalData,
			CreatedAt:    e.CreatedAt,
		})
	}
	return responses, nil
}
