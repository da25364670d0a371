package payroll

import (
	"testing"

	"github.com/bersihkilat/erp-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestOvertimeRegularTotal(t *testing.T) {
	tests := []struct {
		name   string
		record payroll.Record
		want   int64
	}{
		{"nil rate uses default", payroll.Record{OvertimeHours: 2}, 14000},
		{"explicit rate wins", payroll.Record{OvertimeHours: 2, OvertimeRate: int64Ptr(10000)}, 20000},
		{"explicit zero stays zero", payroll.Record{OvertimeHours: 5, OvertimeRate: int64Ptr(0)}, 0},
		{"zero hours", payroll.Record{OvertimeHours: 0}, 0},
		{"fractional hours rounded", payroll.Record{OvertimeHours: 1.5}, 10500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OvertimeRegularTotal(tt.record))
		})
	}
}

func TestOvertimeHolidayTotal(t *testing.T) {
	assert.Equal(t, int64(35000), OvertimeHolidayTotal(payroll.Record{HolidayOvertimeHours: 1}))
	assert.Equal(t, int64(70000), OvertimeHolidayTotal(payroll.Record{HolidayOvertimeHours: 2}))
	assert.Equal(t, int64(80000), OvertimeHolidayTotal(payroll.Record{
		HolidayOvertimeHours: 2,
		HolidayOvertimeRate:  int64Ptr(40000),
	}))
	assert.Equal(t, int64(0), OvertimeHolidayTotal(payroll.Record{
		HolidayOvertimeHours: 2,
		HolidayOvertimeRate:  int64Ptr(0),
	}))
}

func TestGrossIncome(t *testing.T) {
	record := payroll.Record{
		BaseSalary:           2000000,
		MealAllowance:        440000,
		TransportAllowance:   260000,
		OvertimeHours:        3, // 21000 at default rate
		HolidayOvertimeHours: 1, // 35000 at default rate
		PositionAllowance:    150000,
		HolidayBonus:         500000,
		TotalCommission:      123000,
	}
	assert.Equal(t, int64(2000000+440000+260000+21000+35000+150000+500000+123000), GrossIncome(record))
}

func TestTotalDeductions(t *testing.T) {
	record := payroll.Record{
		LatePenalty:  50000,
		OtherPenalty: 10000,
		CashAdvance:  200000,
	}
	assert.Equal(t, int64(260000), TotalDeductions(record))
}

func TestNetSalaryCanBeNegative(t *testing.T) {
	record := payroll.Record{
		BaseSalary:  1000000,
		CashAdvance: 1400000,
	}
	assert.Equal(t, int64(-400000), NetSalary(record))
}

func TestSummarizeConsistency(t *testing.T) {
	record := payroll.Record{
		BaseSalary:           1800000,
		MealAllowance:        340000,
		TransportAllowance:   200000,
		OvertimeHours:        4,
		HolidayOvertimeHours: 2,
		PositionAllowance:    250000,
		TotalCommission:      95500,
		LatePenalty:          25000,
		CashAdvance:          300000,
	}

	summary := Summarize(record)

	assert.Equal(t, OvertimeRegularTotal(record), summary.OvertimeRegularTotal)
	assert.Equal(t, OvertimeHolidayTotal(record), summary.OvertimeHolidayTotal)
	assert.Equal(t, GrossIncome(record), summary.GrossIncome)
	assert.Equal(t, TotalDeductions(record), summary.TotalDeductions)
	assert.Equal(t, summary.GrossIncome-summary.TotalDeductions, summary.NetSalary)
}
