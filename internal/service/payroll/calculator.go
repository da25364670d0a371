package payroll

import (
	"math"

	"github.com/bersihkilat/erp-backend-go/internal/domain/payroll"
)

// Default hourly rates applied when the record does not carry a rate of its
// own. A nil rate means "use the default"; an explicit zero stays zero.
const (
	DefaultOvertimeRate        = 7000  // regular-day overtime, Rupiah/hour
	DefaultHolidayOvertimeRate = 35000 // holiday overtime, Rupiah/shift-hour
)

// OvertimeRegularTotal computes the regular-day overtime pay for a record.
func OvertimeRegularTotal(r payroll.Record) int64 {
	rate := int64(DefaultOvertimeRate)
	if r.OvertimeRate != nil {
		rate = *r.OvertimeRate
	}
	return int64(math.Round(r.OvertimeHours * float64(rate)))
}

// OvertimeHolidayTotal computes the holiday overtime pay for a record.
func OvertimeHolidayTotal(r payroll.Record) int64 {
	rate := int64(DefaultHolidayOvertimeRate)
	if r.HolidayOvertimeRate != nil {
		rate = *r.HolidayOvertimeRate
	}
	return int64(math.Round(r.HolidayOvertimeHours * float64(rate)))
}

// GrossIncome sums every income component: base salary, meal and transport
// allowances, both overtime categories, position allowance, holiday bonus,
// and total commission.
func GrossIncome(r payroll.Record) int64 {
	return r.BaseSalary +
		r.MealAllowance +
		r.TransportAllowance +
		OvertimeRegularTotal(r) +
		OvertimeHolidayTotal(r) +
		r.PositionAllowance +
		r.HolidayBonus +
		r.TotalCommission
}

// TotalDeductions sums the lateness penalty, other penalties, and the cash
// advance (kasbon) deduction.
func TotalDeductions(r payroll.Record) int64 {
	return r.LatePenalty + r.OtherPenalty + r.CashAdvance
}

// NetSalary is gross income minus deductions. It is deliberately not floored
// at zero: a large kasbon can drive the net negative and that must be shown.
func NetSalary(r payroll.Record) int64 {
	return GrossIncome(r) - TotalDeductions(r)
}

// Summarize bundles the derived figures for presentation.
func Summarize(r payroll.Record) payroll.Summary {
	gross := GrossIncome(r)
	deductions := TotalDeductions(r)
	return payroll.Summary{
		OvertimeRegularTotal: OvertimeRegularTotal(r),
		OvertimeHolidayTotal: OvertimeHolidayTotal(r),
		GrossIncome:          gross,
		TotalDeductions:      deductions,
		NetSalary:            gross - deductions,
	}
}
