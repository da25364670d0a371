package commission

import (
	"testing"

	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCommissionFor(t *testing.T) {
	tests := []struct {
		name string
		kg   string
		rate string
		want int64
	}{
		{"whole result", "10", "1000", 10000},
		{"fractional weight", "10.5", "1000", 10500},
		{"rounds half up", "0.5", "1001", 501},
		{"rounds down below half", "0.4", "1001", 400},
		{"zero weight", "0", "1500", 0},
		{"zero rate", "25.5", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommissionFor(dec(tt.kg), dec(tt.rate)))
		})
	}
}

func TestForPeriodPreservesOrderAndDefaultsMissingRates(t *testing.T) {
	totals := []production.ProcessTotal{
		{Process: production.ProcessSetrika, TotalKg: dec("12.5")},
		{Process: production.ProcessCuci, TotalKg: dec("30")},
		{Process: production.ProcessKering, TotalKg: dec("8")},
	}
	rates := map[production.Process]decimal.Decimal{
		production.ProcessCuci:    dec("500"),
		production.ProcessSetrika: dec("800"),
		// kering deliberately absent
	}

	results := ForPeriod(totals, rates)
	require.Len(t, results, 3)

	assert.Equal(t, production.ProcessSetrika, results[0].Process)
	assert.Equal(t, int64(10000), results[0].Total)

	assert.Equal(t, production.ProcessCuci, results[1].Process)
	assert.Equal(t, int64(15000), results[1].Total)

	// Missing rate resolves to zero, never an error.
	assert.Equal(t, production.ProcessKering, results[2].Process)
	assert.True(t, results[2].RatePerKg.IsZero())
	assert.Equal(t, int64(0), results[2].Total)
}

func TestForPeriodEmpty(t *testing.T) {
	results := ForPeriod(nil, map[production.Process]decimal.Decimal{})
	assert.Empty(t, results)
}

func TestTotal(t *testing.T) {
	totals := []production.ProcessTotal{
		{Process: production.ProcessCuci, TotalKg: dec("10")},
		{Process: production.ProcessSetrika, TotalKg: dec("5")},
	}
	rates := map[production.Process]decimal.Decimal{
		production.ProcessCuci:    dec("500"),
		production.ProcessSetrika: dec("800"),
	}

	assert.Equal(t, int64(9000), Total(ForPeriod(totals, rates)))
	assert.Equal(t, int64(0), Total(nil))
}
