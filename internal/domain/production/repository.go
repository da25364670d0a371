package production

import (
	"context"
	"time"
)

type ProductionRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	ListByUserBetween(ctx context.Context, userID int64, startUTC, endUTC time.Time) ([]Entry, error)
	// TotalsByUserBetween sums weight per process for one user inside the
	// window, pre-aggregated for the commission calculator.
	TotalsByUserBetween(ctx context.Context, userID int64, startUTC, endUTC time.Time) ([]ProcessTotal, error)
}
