package commission

import (
	"context"

	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/shopspring/decimal"
)

type CommissionRepository interface {
	// RateTable returns the full process -> rate-per-kg mapping.
	RateTable(ctx context.Context) (map[production.Process]decimal.Decimal, error)
	UpsertRate(ctx context.Context, process production.Process, ratePerKg decimal.Decimal) (Rate, error)
	ListRates(ctx context.Context) ([]Rate, error)
}
