package payroll

import (
	"math"
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/pkg/timezone"
)

// Shift enum - named shifts with fixed local start times.
type Shift string

const (
	ShiftPagi Shift = "pagi" // 07:00 local
	ShiftSore Shift = "sore" // 14:00 local
)

// shiftStartMinutes maps each shift to its start as minutes since local midnight.
var shiftStartMinutes = map[Shift]int{
	ShiftPagi: 7 * 60,
	ShiftSore: 14 * 60,
}

const (
	// LateToleranceMinutes is the grace period after shift start; a clock-in
	// exactly at the boundary is on time.
	LateToleranceMinutes = 15

	LatePenaltyPerDay   = 25000 // Rupiah per late day
	TransportPerDay     = 10000 // Rupiah per attendance day
	MealRateJunior      = 17000 // Rupiah per day, tenure <= 12 months
	MealRateSenior      = 20000 // Rupiah per day, tenure > 12 months
	baselineWorkHours   = 8.0
	minimumOvertimeHrs  = 3.0
	OvertimeRatePerHour = 7000 // Rupiah, regular-day overtime
)

// TenureMonths returns whole calendar months between the join date and the
// first day of the payroll month. Only year and month matter: joining on the
// last day of a month still counts that month as month zero. Future join
// dates clamp to zero.
func TenureMonths(joinDate time.Time, payrollMonth, payrollYear int) int {
	months := (payrollYear-joinDate.Year())*12 + (payrollMonth - int(joinDate.Month()))
	if months < 0 {
		return 0
	}
	return months
}

// PositionAllowance returns the tenure-tiered tunjangan jabatan:
// months 0-12 -> 0; 13-24 -> 150000; 25-36 -> 250000; 37-48 -> 350000;
// each further 12-month block adds 100000.
func PositionAllowance(tenureMonths int) int64 {
	if tenureMonths <= 12 {
		return 0
	}

	tier := (tenureMonths - 1) / 12
	if tier == 1 {
		return 150000
	}
	return 150000 + int64(tier-1)*100000
}

// MealAllowanceRate returns the per-attendance-day uang makan rate. A flat
// two-tier step: no graduated tiers here, unlike the position allowance.
func MealAllowanceRate(tenureMonths int) int64 {
	if tenureMonths > 12 {
		return MealRateSenior
	}
	return MealRateJunior
}

// IsLate reports whether a clock-in instant is late for the given shift:
// strictly past shift start plus tolerance, measured in minutes since local
// midnight. Unknown shifts never count as late.
func IsLate(clockIn time.Time, shift Shift) bool {
	start, ok := shiftStartMinutes[shift]
	if !ok {
		return false
	}

	local := timezone.LocalFromUTC(clockIn.UTC())
	clockInMinutes := local.Hour()*60 + local.Minute()

	return clockInMinutes > start+LateToleranceMinutes
}

// ClassifyShift assigns a clock-in instant to the nearest shift: mornings
// belong to pagi, everything from 11:00 local onward to sore.
func ClassifyShift(clockIn time.Time) Shift {
	local := timezone.LocalFromUTC(clockIn.UTC())
	if local.Hour() < 11 {
		return ShiftPagi
	}
	return ShiftSore
}

// LatePenalty returns the denda keterlambatan: linear per late day, no cap.
func LatePenalty(lateDays int) int64 {
	return int64(lateDays) * LatePenaltyPerDay
}

// TransportAllowance returns the uang transport: linear per attendance day.
func TransportAllowance(attendanceDays int) int64 {
	return int64(attendanceDays) * TransportPerDay
}

// OvertimeHours returns compensated overtime for a day's total work hours.
// Hours beyond the 8-hour baseline count only once the excess reaches 3
// hours; below that threshold overtime is not compensated at all. Fractional
// hours are preserved; flooring to whole hours is caller policy.
func OvertimeHours(totalWorkHours float64) float64 {
	raw := totalWorkHours - baselineWorkHours
	if raw < minimumOvertimeHrs {
		return 0
	}
	return raw
}

// OvertimeAmount converts regular-day overtime hours to Rupiah.
func OvertimeAmount(overtimeHours float64) int64 {
	return int64(math.Round(overtimeHours * OvertimeRatePerHour))
}
