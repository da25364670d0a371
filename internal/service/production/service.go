package production

import (
	"context"

	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/timezone"
	"github.com/shopspring/decimal"
)

type ProductionServiceImpl struct {
	productionRepo production.ProductionRepository
}

func NewProductionService(productionRepo production.ProductionRepository) production.ProductionService {
	return &ProductionServiceImpl{
		productionRepo: productionRepo,
	}
}

// Create validates and records a production entry. Weight is mandatory for
// weight-based processes; unit-based processes (cuci_satuan, cuci_sepatu) may
// omit it.
func (s *ProductionServiceImpl) Create(ctx context.Context, userID int64, req production.CreateEntryRequest) (production.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return production.EntryResponse{}, err
	}

	weight := decimal.Zero
	if req.WeightKg != nil {
		weight = *req.WeightKg
	}

	entry := production.Entry{
		UserID:   userID,
		Process:  production.Process(req.Process),
		WeightKg: weight,
		Quantity: req.Quantity,
		Nota:     req.Nota,
	}

	created, err := s.productionRepo.Create(ctx, entry)
	if err != nil {
		return production.EntryResponse{}, err
	}

	return production.ToResponse(created), nil
}

func (s *ProductionServiceImpl) ListMine(ctx context.Context, userID int64, month, year int) ([]production.EntryResponse, error) {
	startUTC, endUTC, err := timezone.MonthBoundaries(month, year)
	if err != nil {
		return nil, err
	}

	entries, err := s.productionRepo.ListByUserBetween(ctx, userID, startUTC, endUTC)
	if err != nil {
		return nil, err
	}

	responses := make([]production.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, production.ToResponse(e))
	}
	return responses, nil
}
