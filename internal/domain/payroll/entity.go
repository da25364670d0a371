package payroll

import "time"

// Record - per-employee payroll figures for one (month, year) period.
// All money fields are Rupiah. Overtime rates are pointers so that "rate not
// provided" (nil, use the default) is distinguishable from "rate explicitly
// zero" (0, keep zero).
type Record struct {
	ID     int64
	UserID int64
	Month  int // 1-12
	Year   int

	BaseSalary           int64
	MealAllowance        int64
	TransportAllowance   int64
	OvertimeHours        float64 // regular-day overtime, whole or fractional hours
	OvertimeRate         *int64  // nil -> DefaultOvertimeRate
	HolidayOvertimeHours float64
	HolidayOvertimeRate  *int64 // nil -> DefaultHolidayOvertimeRate
	PositionAllowance    int64
	HolidayBonus         int64 // THR
	TotalCommission      int64
	LatePenalty          int64
	OtherPenalty         int64
	CashAdvance          int64 // kasbon

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	UserName *string
}

// Summary bundles the derived figures for presentation. NetSalary is signed:
// a large cash advance may push it negative and it is surfaced as-is.
type Summary struct {
	OvertimeRegularTotal int64
	OvertimeHolidayTotal int64
	GrossIncome          int64
	TotalDeductions      int64
	NetSalary            int64
}
