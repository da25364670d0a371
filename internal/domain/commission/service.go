package commission

import "context"

type CommissionService interface {
	UpsertRate(ctx context.Context, req UpsertRateRequest) (RateResponse, error)
	ListRates(ctx context.Context) ([]RateResponse, error)
	// PeriodReport computes per-process and total commission for one employee
	// over a local calendar month.
	PeriodReport(ctx context.Context, userID int64, month, year int) (PeriodReportResponse, error)
}
