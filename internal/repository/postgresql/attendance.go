package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/domain/attendance"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (user_id, type, timestamp, lat, lng, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.UserID,
		record.Type,
		record.Timestamp,
		record.Latitude,
		record.Longitude,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, type, timestamp, lat, lng,
			   status, annulled_by, annulled_at, annulled_reason, created_at
		FROM attendance
		WHERE id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.UserID, &att.Type, &att.Timestamp, &att.Latitude, &att.Longitude,
		&att.Status, &att.AnnulledBy, &att.AnnulledAt, &att.AnnulledReason, &att.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// ListByUserBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserBetween(ctx context.Context, userID int64, startUTC, endUTC time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, type, timestamp, lat, lng,
			   status, annulled_by, annulled_at, annulled_reason, created_at
		FROM attendance
		WHERE user_id = $1
		  AND timestamp >= $2
		  AND timestamp <= $3
		ORDER BY timestamp
	`

	rows, err := q.Query(ctx, query, userID, startUTC, endUTC)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows, false)
}

// ListBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListBetween(ctx context.Context, startUTC, endUTC time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.user_id, a.type, a.timestamp, a.lat, a.lng,
			   a.status, a.annulled_by, a.annulled_at, a.annulled_reason, a.created_at,
			   u.name
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.timestamp >= $1
		  AND a.timestamp <= $2
		ORDER BY a.timestamp
	`

	rows, err := q.Query(ctx, query, startUTC, endUTC)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows, true)
}

// Annul implements attendance.AttendanceRepository. The UPDATE is guarded by
// status = 'active': if another annulment already landed, zero rows are
// affected and the caller gets ErrAlreadyAnnulled.
func (a *attendanceRepository) Annul(ctx context.Context, id int64, annulledBy int64, annulledAt time.Time, reason string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET status = 'annulled', annulled_by = $2, annulled_at = $3, annulled_reason = TRIM($4)
		WHERE id = $1
		  AND status = 'active'
	`

	tag, err := q.Exec(ctx, query, id, annulledBy, annulledAt, reason)
	if err != nil {
		return fmt.Errorf("failed to annul attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyAnnulled
	}

	return nil
}

func collectAttendance(rows pgx.Rows, withUserName bool) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		dests := []interface{}{
			&att.ID, &att.UserID, &att.Type, &att.Timestamp, &att.Latitude, &att.Longitude,
			&att.Status, &att.AnnulledBy, &att.AnnulledAt, &att.AnnulledReason, &att.CreatedAt,
		}
		if withUserName {
			dests = append(dests, &att.UserName)
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}
