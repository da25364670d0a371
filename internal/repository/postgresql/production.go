package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/database"
)

type productionRepository struct {
	db *database.DB
}

func NewProductionRepository(db *database.DB) production.ProductionRepository {
	return &productionRepository{db: db}
}

// Create implements production.ProductionRepository.
func (p *productionRepository) Create(ctx context.Context, entry production.Entry) (production.Entry, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO production_entries (user_id, process, weight_kg, quantity, nota)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.UserID,
		entry.Process,
		entry.WeightKg,
		entry.Quantity,
		entry.Nota,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return production.Entry{}, fmt.Errorf("failed to create production entry: %w", err)
	}

	return entry, nil
}

// ListByUserBetween implements production.ProductionRepository.
func (p *productionRepository) ListByUserBetween(ctx context.Context, userID int64, startUTC, endUTC time.Time) ([]production.Entry, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, user_id, process, weight_kg, quantity, nota, created_at
		FROM production_entries
		WHERE user_id = $1
		  AND created_at >= $2
		  AND created_at <= $3
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, userID, startUTC, endUTC)
	if err != nil {
		return nil, fmt.Errorf("failed to list production entries: %w", err)
	}
	defer rows.Close()

	var entries []production.Entry
	for rows.Next() {
		var e production.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Process, &e.WeightKg, &e.Quantity, &e.Nota, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan production entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// TotalsByUserBetween implements production.ProductionRepository.
func (p *productionRepository) TotalsByUserBetween(ctx context.Context, userID int64, startUTC, endUTC time.Time) ([]production.ProcessTotal, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT process, COALESCE(SUM(weight_kg), 0)
		FROM production_entries
		WHERE user_id = $1
		  AND created_at >= $2
		  AND created_at <= $3
		GROUP BY process
		ORDER BY process
	`

	rows, err := q.Query(ctx, query, userID, startUTC, endUTC)
	if err != nil {
		return nil, fmt.Errorf("failed to total production entries: %w", err)
	}
	defer rows.Close()

	var totals []production.ProcessTotal
	for rows.Next() {
		var t production.ProcessTotal
		if err := rows.Scan(&t.Process, &t.TotalKg); err != nil {
			return nil, fmt.Errorf("failed to scan production total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
