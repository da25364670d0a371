package postgresql

import (
	"context"
	"fmt"

	"github.com/bersihkilat/erp-backend-go/internal/domain/commission"
	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type commissionRepository struct {
	db *database.DB
}

func NewCommissionRepository(db *database.DB) commission.CommissionRepository {
	return &commissionRepository{db: db}
}

// RateTable implements commission.CommissionRepository.
func (c *commissionRepository) RateTable(ctx context.Context) (map[production.Process]decimal.Decimal, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT process, rate_per_kg FROM commission_rates`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load commission rates: %w", err)
	}
	defer rows.Close()

	rates := make(map[production.Process]decimal.Decimal)
	for rows.Next() {
		var process production.Process
		var rate decimal.Decimal
		if err := rows.Scan(&process, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan commission rate: %w", err)
		}
		rates[process] = rate
	}
	return rates, rows.Err()
}

// UpsertRate implements commission.CommissionRepository.
func (c *commissionRepository) UpsertRate(ctx context.Context, process production.Process, ratePerKg decimal.Decimal) (commission.Rate, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO commission_rates (process, rate_per_kg, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (process)
		DO UPDATE SET rate_per_kg = EXCLUDED.rate_per_kg, updated_at = NOW()
		RETURNING id, process, rate_per_kg, updated_at
	`

	var rate commission.Rate
	err := q.QueryRow(ctx, query, process, ratePerKg).Scan(
		&rate.ID, &rate.Process, &rate.RatePerKg, &rate.UpdatedAt,
	)
	if err != nil {
		return commission.Rate{}, fmt.Errorf("failed to upsert commission rate: %w", err)
	}

	return rate, nil
}

// ListRates implements commission.CommissionRepository.
func (c *commissionRepository) ListRates(ctx context.Context) ([]commission.Rate, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, process, rate_per_kg, updated_at
		FROM commission_rates
		ORDER BY process
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission rates: %w", err)
	}
	defer rows.Close()

	var rates []commission.Rate
	for rows.Next() {
		var r commission.Rate
		if err := rows.Scan(&r.ID, &r.Process, &r.RatePerKg, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan commission rate: %w", err)
		}
		rates = append(rates, r)
	}
	return rates, rows.Err()
}
