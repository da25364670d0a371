package production

import (
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEntryRequest struct {
	Process  string           `json:"process"`
	WeightKg *decimal.Decimal `json:"weight_kg,omitempty"`
	Quantity int              `json:"quantity"`
	Nota     string           `json:"nota"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidProcess(r.Process) {
		errs = append(errs, validator.ValidationError{Field: "process", Message: "is not a recognized process"})
	} else if IsWeightRequired(r.Process) && (r.WeightKg == nil || !r.WeightKg.IsPositive()) {
		errs = append(errs, validator.ValidationError{Field: "weight_kg", Message: "must be positive for this process"})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.Nota) {
		errs = append(errs, validator.ValidationError{Field: "nota", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	UserName  *string         `json:"user_name,omitempty"`
	Process   string          `json:"process"`
	WeightKg  decimal.Decimal `json:"weight_kg"`
	Quantity  int             `json:"quantity"`
	Nota      string          `json:"nota"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		UserName:  e.UserName,
		Process:   string(e.Process),
		WeightKg:  e.WeightKg,
		Quantity:  e.Quantity,
		Nota:      e.Nota,
		CreatedAt: e.CreatedAt,
	}
}
