package commission

import (
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/shopspring/decimal"
)

// Rate maps a production process to its commission rate per kilogram.
// Processes absent from the table resolve to a zero rate, never an error.
type Rate struct {
	ID        int64
	Process   production.Process
	RatePerKg decimal.Decimal // Rupiah per kg
	UpdatedAt time.Time
}

// Result is the computed commission for one process over a period.
type Result struct {
	Process   production.Process
	TotalKg   decimal.Decimal
	RatePerKg decimal.Decimal
	Total     int64 // Rupiah, rounded half-up
}
