package commission

import (
	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertRateRequest struct {
	Process   string          `json:"process"`
	RatePerKg decimal.Decimal `json:"rate_per_kg"`
}

func (r *UpsertRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !production.IsValidProcess(r.Process) {
		errs = append(errs, validator.ValidationError{Field: "process", Message: "is not a recognized process"})
	}
	if r.RatePerKg.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate_per_kg", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateResponse struct {
	Process   string          `json:"process"`
	RatePerKg decimal.Decimal `json:"rate_per_kg"`
}

type ResultResponse struct {
	Process   string          `json:"process"`
	TotalKg   decimal.Decimal `json:"total_kg"`
	RatePerKg decimal.Decimal `json:"rate_per_kg"`
	Total     int64           `json:"total"`
}

type PeriodReportResponse struct {
	UserID  int64            `json:"user_id"`
	Month   int              `json:"month"`
	Year    int              `json:"year"`
	Results []ResultResponse `json:"results"`
	Total   int64            `json:"total"`
}
