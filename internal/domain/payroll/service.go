package payroll

import "context"

type PayrollService interface {
	Upsert(ctx context.Context, req UpsertRequest) (RecordResponse, error)
	Get(ctx context.Context, userID int64, month, year int) (RecordResponse, error)
	ListPeriod(ctx context.Context, month, year int) ([]RecordResponse, error)
	// Generate recomputes the attendance- and production-derived figures for
	// one employee and persists them idempotently.
	Generate(ctx context.Context, req GenerateRequest) (RecordResponse, error)
}
