package commission

import (
	"github.com/bersihkilat/erp-backend-go/internal/domain/commission"
	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/shopspring/decimal"
)

// CommissionFor computes the commission for a single process: weight times
// rate, rounded half-up to whole Rupiah. Either input at zero yields zero.
func CommissionFor(totalKg, ratePerKg decimal.Decimal) int64 {
	return totalKg.Mul(ratePerKg).Round(0).IntPart()
}

// ForPeriod maps per-process weight totals against the rate table. A process
// missing from the table resolves to a zero rate, never an error. Input order
// is preserved and repeated process names are not deduplicated: the caller is
// expected to have pre-aggregated.
func ForPeriod(totals []production.ProcessTotal, rates map[production.Process]decimal.Decimal) []commission.Result {
	results := make([]commission.Result, 0, len(totals))
	for _, t := range totals {
		rate, ok := rates[t.Process]
		if !ok {
			rate = decimal.Zero
		}
		results = append(results, commission.Result{
			Process:   t.Process,
			TotalKg:   t.TotalKg,
			RatePerKg: rate,
			Total:     CommissionFor(t.TotalKg, rate),
		})
	}
	return results
}

// Total sums the commission across all results; zero for empty input.
func Total(results []commission.Result) int64 {
	var sum int64
	for _, r := range results {
		sum += r.Total
	}
	return sum
}
