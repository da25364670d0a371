package postgresql

import (
	"context"
	"fmt"

	"github.com/bersihkilat/erp-backend-go/internal/domain/audit"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

// Append implements audit.AuditRepository. The table is insert-only; there is
// deliberately no update or delete here.
func (a *auditRepository) Append(ctx context.Context, entry audit.Entry) (audit.Entry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO audit_log (user_id, action, detail)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, entry.UserID, entry.Action, entry.Detail).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return audit.Entry{}, fmt.Errorf("failed to append audit entry: %w", err)
	}

	return entry, nil
}

// ListByAction implements audit.AuditRepository.
func (a *auditRepository) ListByAction(ctx context.Context, action string, limit int) ([]audit.Entry, error) {
	q := GetQuerier(ctx, a.db)

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, action, detail, created_at
		FROM audit_log
		WHERE action = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, action, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
