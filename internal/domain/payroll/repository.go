package payroll

import "context"

type PayrollRepository interface {
	// Upsert creates or overwrites the record keyed by (user_id, month, year).
	Upsert(ctx context.Context, record Record) (Record, error)
	GetByUserPeriod(ctx context.Context, userID int64, month, year int) (Record, error)
	ListByPeriod(ctx context.Context, month, year int) ([]Record, error)
}
