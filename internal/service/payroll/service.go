package payroll

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/domain/attendance"
	"github.com/bersihkilat/erp-backend-go/internal/domain/commission"
	"github.com/bersihkilat/erp-backend-go/internal/domain/payroll"
	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/bersihkilat/erp-backend-go/internal/domain/user"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/timezone"
	commissionCalc "github.com/bersihkilat/erp-backend-go/internal/service/commission"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	productionRepo production.ProductionRepository
	commissionRepo commission.CommissionRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	productionRepo production.ProductionRepository,
	commissionRepo commission.CommissionRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		productionRepo: productionRepo,
		commissionRepo: commissionRepo,
	}
}

func (s *PayrollServiceImpl) Upsert(ctx context.Context, req payroll.UpsertRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return payroll.RecordResponse{}, err
	}

	record := payroll.Record{
		UserID:               req.UserID,
		Month:                req.Month,
		Year:                 req.Year,
		BaseSalary:           req.BaseSalary,
		MealAllowance:        req.MealAllowance,
		TransportAllowance:   req.TransportAllowance,
		OvertimeHours:        req.OvertimeHours,
		OvertimeRate:         req.OvertimeRate,
		HolidayOvertimeHours: req.HolidayOvertimeHours,
		HolidayOvertimeRate:  req.HolidayOvertimeRate,
		PositionAllowance:    req.PositionAllowance,
		HolidayBonus:         req.HolidayBonus,
		TotalCommission:      req.TotalCommission,
		LatePenalty:          req.LatePenalty,
		OtherPenalty:         req.OtherPenalty,
		CashAdvance:          req.CashAdvance,
	}

	saved, err := s.payrollRepo.Upsert(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return toRecordResponse(saved), nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, userID int64, month, year int) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.GetByUserPeriod(ctx, userID, month, year)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return toRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListPeriod(ctx context.Context, month, year int) ([]payroll.RecordResponse, error) {
	records, err := s.payrollRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toRecordResponse(r))
	}
	return responses, nil
}

// Generate recomputes a full payroll record for one employee and month:
// attendance-derived allowances and penalties, overtime, tenure-based
// figures, and production commission. Manually maintained figures on an
// existing record (kasbon, THR, other penalties, holiday overtime, explicit
// rates) are preserved across regeneration.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	usr, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	startUTC, endUTC, err := timezone.MonthBoundaries(req.Month, req.Year)
	if err != nil {
		return payroll.RecordResponse{}, fmt.Errorf("%w: %v", payroll.ErrInvalidPeriod, err)
	}

	records, err := s.attendanceRepo.ListByUserBetween(ctx, req.UserID, startUTC, endUTC)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	// Annulled records are voided: only active ones feed the figures.
	days := groupByLocalDate(attendance.FilterActive(records))

	attendanceDays := 0
	lateDays := 0
	totalOvertime := 0.0
	for _, day := range days {
		if day.firstIn == nil {
			continue
		}
		attendanceDays++
		if IsLate(*day.firstIn, ClassifyShift(*day.firstIn)) {
			lateDays++
		}
		if day.lastOut != nil && day.lastOut.After(*day.firstIn) {
			totalOvertime += OvertimeHours(day.lastOut.Sub(*day.firstIn).Hours())
		}
	}

	tenure := TenureMonths(usr.JoinDate, req.Month, req.Year)

	totals, err := s.productionRepo.TotalsByUserBetween(ctx, req.UserID, startUTC, endUTC)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	rateTable, err := s.commissionRepo.RateTable(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	totalCommission := commissionCalc.Total(commissionCalc.ForPeriod(totals, rateTable))

	record := payroll.Record{
		UserID:             req.UserID,
		Month:              req.Month,
		Year:               req.Year,
		BaseSalary:         usr.BaseSalary,
		MealAllowance:      MealAllowanceRate(tenure) * int64(attendanceDays),
		TransportAllowance: TransportAllowance(attendanceDays),
		// Payroll pays whole overtime hours; the fractional remainder is
		// dropped here, not in the rule itself.
		OvertimeHours:     math.Floor(totalOvertime),
		PositionAllowance: PositionAllowance(tenure),
		TotalCommission:   totalCommission,
		LatePenalty:       LatePenalty(lateDays),
	}

	existing, err := s.payrollRepo.GetByUserPeriod(ctx, req.UserID, req.Month, req.Year)
	switch {
	case err == nil:
		record.OvertimeRate = existing.OvertimeRate
		record.HolidayOvertimeHours = existing.HolidayOvertimeHours
		record.HolidayOvertimeRate = existing.HolidayOvertimeRate
		record.HolidayBonus = existing.HolidayBonus
		record.OtherPenalty = existing.OtherPenalty
		record.CashAdvance = existing.CashAdvance
	case errors.Is(err, payroll.ErrRecordNotFound):
		// First generation for this period; manual figures start at zero.
	default:
		return payroll.RecordResponse{}, err
	}

	saved, err := s.payrollRepo.Upsert(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return toRecordResponse(saved), nil
}

// localDay collects the first clock-in and last clock-out of one local date.
type localDay struct {
	firstIn *time.Time
	lastOut *time.Time
}

func groupByLocalDate(records []attendance.Attendance) map[string]*localDay {
	days := make(map[string]*localDay)
	for _, r := range records {
		date := timezone.LocalDateOf(r.Timestamp)
		day, ok := days[date]
		if !ok {
			day = &localDay{}
			days[date] = day
		}

		ts := r.Timestamp
		switch r.Type {
		case attendance.ClockIn:
			if day.firstIn == nil || ts.Before(*day.firstIn) {
				day.firstIn = &ts
			}
		case attendance.ClockOut:
			if day.lastOut == nil || ts.After(*day.lastOut) {
				day.lastOut = &ts
			}
		}
	}
	return days
}

func toRecordResponse(r payroll.Record) payroll.RecordResponse {
	summary := Summarize(r)
	return payroll.RecordResponse{
		ID:                   r.ID,
		UserID:               r.UserID,
		UserName:             r.UserName,
		Month:                r.Month,
		Year:                 r.Year,
		BaseSalary:           r.BaseSalary,
		MealAllowance:        r.MealAllowance,
		TransportAllowance:   r.TransportAllowance,
		OvertimeHours:        r.OvertimeHours,
		OvertimeRate:         r.OvertimeRate,
		HolidayOvertimeHours: r.HolidayOvertimeHours,
		HolidayOvertimeRate:  r.HolidayOvertimeRate,
		PositionAllowance:    r.PositionAllowance,
		HolidayBonus:         r.HolidayBonus,
		TotalCommission:      r.TotalCommission,
		LatePenalty:          r.LatePenalty,
		OtherPenalty:         r.OtherPenalty,
		CashAdvance:          r.CashAdvance,
		OvertimeRegularTotal: summary.OvertimeRegularTotal,
		OvertimeHolidayTotal: summary.OvertimeHolidayTotal,
		GrossIncome:          summary.GrossIncome,
		TotalDeductions:      summary.TotalDeductions,
		NetSalary:            summary.NetSalary,
	}
}
