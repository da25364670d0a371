package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTenureMonths(t *testing.T) {
	tests := []struct {
		name     string
		joinDate time.Time
		month    int
		year     int
		want     int
	}{
		{"same month", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 3, 2025, 0},
		{"one month", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 3, 2025, 1},
		{"year rollover", time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), 2, 2025, 3},
		{"exactly one year", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 3, 2025, 12},
		{"join on last day of month", time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC), 4, 2024, 1},
		{"future join date clamps to zero", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 3, 2025, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TenureMonths(tt.joinDate, tt.month, tt.year))
		})
	}
}

func TestTenureMonthsMonotonic(t *testing.T) {
	join := time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC)
	prev := -1
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			got := TenureMonths(join, month, year)
			assert.GreaterOrEqual(t, got, prev, "tenure decreased at %d-%d", year, month)
			prev = got
		}
	}
}

func TestPositionAllowance(t *testing.T) {
	tests := []struct {
		tenure int
		want   int64
	}{
		{0, 0},
		{6, 0},
		{12, 0},
		{13, 150000},
		{24, 150000},
		{25, 250000},
		{36, 250000},
		{37, 350000},
		{49, 450000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PositionAllowance(tt.tenure), "tenure %d months", tt.tenure)
	}
}

func TestMealAllowanceRate(t *testing.T) {
	assert.Equal(t, int64(MealRateJunior), MealAllowanceRate(0))
	assert.Equal(t, int64(MealRateJunior), MealAllowanceRate(12))
	assert.Equal(t, int64(MealRateSenior), MealAllowanceRate(13))
	assert.Equal(t, int64(MealRateSenior), MealAllowanceRate(120))
}

func TestIsLate(t *testing.T) {
	// Local 07:15 is UTC 23:15 of the previous day under the +8 offset.
	tests := []struct {
		name    string
		clockIn time.Time
		shift   Shift
		want    bool
	}{
		{"pagi exactly at tolerance boundary", time.Date(2025, 1, 1, 23, 15, 0, 0, time.UTC), ShiftPagi, false},
		{"pagi one minute past tolerance", time.Date(2025, 1, 1, 23, 16, 0, 0, time.UTC), ShiftPagi, true},
		{"pagi on the dot", time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC), ShiftPagi, false},
		{"pagi early", time.Date(2025, 1, 1, 22, 30, 0, 0, time.UTC), ShiftPagi, false},
		{"sore at tolerance boundary", time.Date(2025, 1, 2, 6, 15, 0, 0, time.UTC), ShiftSore, false},
		{"sore one minute past tolerance", time.Date(2025, 1, 2, 6, 16, 0, 0, time.UTC), ShiftSore, true},
		{"unknown shift never late", time.Date(2025, 1, 2, 6, 16, 0, 0, time.UTC), Shift("malam"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLate(tt.clockIn, tt.shift))
		})
	}
}

func TestClassifyShift(t *testing.T) {
	// Local 07:00 = UTC 23:00 previous day; local 11:00 = UTC 03:00.
	assert.Equal(t, ShiftPagi, ClassifyShift(time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, ShiftPagi, ClassifyShift(time.Date(2025, 1, 2, 2, 59, 0, 0, time.UTC)))
	assert.Equal(t, ShiftSore, ClassifyShift(time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC)))
	assert.Equal(t, ShiftSore, ClassifyShift(time.Date(2025, 1, 2, 8, 30, 0, 0, time.UTC)))
}

func TestLatePenalty(t *testing.T) {
	assert.Equal(t, int64(0), LatePenalty(0))
	assert.Equal(t, int64(25000), LatePenalty(1))
	assert.Equal(t, int64(75000), LatePenalty(3))
}

func TestTransportAllowance(t *testing.T) {
	assert.Equal(t, int64(0), TransportAllowance(0))
	assert.Equal(t, int64(40000), TransportAllowance(4))
	assert.Equal(t, int64(260000), TransportAllowance(26))
}

func TestOvertimeHours(t *testing.T) {
	tests := []struct {
		name       string
		totalHours float64
		want       float64
	}{
		{"under baseline", 7, 0},
		{"exactly baseline", 8, 0},
		{"below minimum threshold", 10, 0},
		{"just below minimum threshold", 10.9, 0},
		{"exactly minimum threshold", 11, 3},
		{"fractional hours preserved", 12.5, 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, OvertimeHours(tt.totalHours), 1e-9)
		})
	}
}

func TestOvertimeAmount(t *testing.T) {
	assert.Equal(t, int64(0), OvertimeAmount(0))
	assert.Equal(t, int64(21000), OvertimeAmount(3))
	assert.Equal(t, int64(31500), OvertimeAmount(4.5))
}
