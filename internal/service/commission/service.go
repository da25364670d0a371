package commission

import (
	"context"

	"github.com/bersihkilat/erp-backend-go/internal/domain/commission"
	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/timezone"
)

type CommissionServiceImpl struct {
	commissionRepo commission.CommissionRepository
	productionRepo production.ProductionRepository
}

func NewCommissionService(
	commissionRepo commission.CommissionRepository,
	productionRepo production.ProductionRepository,
) commission.CommissionService {
	return &CommissionServiceImpl{
		commissionRepo: commissionRepo,
		productionRepo: productionRepo,
	}
}

func (s *CommissionServiceImpl) UpsertRate(ctx context.Context, req commission.UpsertRateRequest) (commission.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.RateResponse{}, err
	}

	rate, err := s.commissionRepo.UpsertRate(ctx, production.Process(req.Process), req.RatePerKg)
	if err != nil {
		return commission.RateResponse{}, err
	}

	return commission.RateResponse{
		Process:   string(rate.Process),
		RatePerKg: rate.RatePerKg,
	}, nil
}

func (s *CommissionServiceImpl) ListRates(ctx context.Context) ([]commission.RateResponse, error) {
	rates, err := s.commissionRepo.ListRates(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]commission.RateResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, commission.RateResponse{
			Process:   string(r.Process),
			RatePerKg: r.RatePerKg,
		})
	}
	return responses, nil
}

func (s *CommissionServiceImpl) PeriodReport(ctx context.Context, userID int64, month, year int) (commission.PeriodReportResponse, error) {
	startUTC, endUTC, err := timezone.MonthBoundaries(month, year)
	if err != nil {
		return commission.PeriodReportResponse{}, err
	}

	totals, err := s.productionRepo.TotalsByUserBetween(ctx, userID, startUTC, endUTC)
	if err != nil {
		return commission.PeriodReportResponse{}, err
	}

	rateTable, err := s.commissionRepo.RateTable(ctx)
	if err != nil {
		return commission.PeriodReportResponse{}, err
	}

	results := ForPeriod(totals, rateTable)

	report := commission.PeriodReportResponse{
		UserID:  userID,
		Month:   month,
		Year:    year,
		Results: make([]commission.ResultResponse, 0, len(results)),
		Total:   Total(results),
	}
	for _, r := range results {
		report.Results = append(report.Results, commission.ResultResponse{
			Process:   string(r.Process),
			TotalKg:   r.TotalKg,
			RatePerKg: r.RatePerKg,
			Total:     r.Total,
		})
	}
	return report, nil
}
