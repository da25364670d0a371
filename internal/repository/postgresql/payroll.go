package postgresql

import (
	"context"
	"fmt"

	"github.com/bersihkilat/erp-backend-go/internal/domain/payroll"
	"github.com/bersihkilat/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, user_id, month, year,
	base_salary, meal_allowance, transport_allowance,
	overtime_hours, overtime_rate, holiday_overtime_hours, holiday_overtime_rate,
	position_allowance, holiday_bonus, total_commission,
	late_penalty, other_penalty, cash_advance,
	created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Month, &rec.Year,
		&rec.BaseSalary, &rec.MealAllowance, &rec.TransportAllowance,
		&rec.OvertimeHours, &rec.OvertimeRate, &rec.HolidayOvertimeHours, &rec.HolidayOvertimeRate,
		&rec.PositionAllowance, &rec.HolidayBonus, &rec.TotalCommission,
		&rec.LatePenalty, &rec.OtherPenalty, &rec.CashAdvance,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert implements payroll.PayrollRepository. The (user_id, month, year) key
// makes regeneration idempotent: a second run for the same period overwrites
// the existing row.
func (p *payrollRepository) Upsert(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := fmt.Sprintf(`
		INSERT INTO payroll (user_id, month, year,
			base_salary, meal_allowance, transport_allowance,
			overtime_hours, overtime_rate, holiday_overtime_hours, holiday_overtime_rate,
			position_allowance, holiday_bonus, total_commission,
			late_penalty, other_penalty, cash_advance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id, month, year)
		DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			meal_allowance = EXCLUDED.meal_allowance,
			transport_allowance = EXCLUDED.transport_allowance,
			overtime_hours = EXCLUDED.overtime_hours,
			overtime_rate = EXCLUDED.overtime_rate,
			holiday_overtime_hours = EXCLUDED.holiday_overtime_hours,
			holiday_overtime_rate = EXCLUDED.holiday_overtime_rate,
			position_allowance = EXCLUDED.position_allowance,
			holiday_bonus = EXCLUDED.holiday_bonus,
			total_commission = EXCLUDED.total_commission,
			late_penalty = EXCLUDED.late_penalty,
			other_penalty = EXCLUDED.other_penalty,
			cash_advance = EXCLUDED.cash_advance,
			updated_at = NOW()
		RETURNING %s
	`, payrollColumns)

	rec, err := scanPayroll(q.QueryRow(ctx, query,
		record.UserID, record.Month, record.Year,
		record.BaseSalary, record.MealAllowance, record.TransportAllowance,
		record.OvertimeHours, record.OvertimeRate, record.HolidayOvertimeHours, record.HolidayOvertimeRate,
		record.PositionAllowance, record.HolidayBonus, record.TotalCommission,
		record.LatePenalty, record.OtherPenalty, record.CashAdvance,
	))
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to upsert payroll: %w", err)
	}

	return rec, nil
}

// GetByUserPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) GetByUserPeriod(ctx context.Context, userID int64, month, year int) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll
		WHERE user_id = $1 AND month = $2 AND year = $3
	`, payrollColumns)

	rec, err := scanPayroll(q.QueryRow(ctx, query, userID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return rec, nil
}

// ListByPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.user_id, p.month, p.year,
			   p.base_salary, p.meal_allowance, p.transport_allowance,
			   p.overtime_hours, p.overtime_rate, p.holiday_overtime_hours, p.holiday_overtime_rate,
			   p.position_allowance, p.holiday_bonus, p.total_commission,
			   p.late_penalty, p.other_penalty, p.cash_advance,
			   p.created_at, p.updated_at,
			   u.name
		FROM payroll p
		JOIN users u ON u.id = p.user_id
		WHERE p.month = $1 AND p.year = $2
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Month, &rec.Year,
			&rec.BaseSalary, &rec.MealAllowance, &rec.TransportAllowance,
			&rec.OvertimeHours, &rec.OvertimeRate, &rec.HolidayOvertimeHours, &rec.HolidayOvertimeRate,
			&rec.PositionAllowance, &rec.HolidayBonus, &rec.TotalCommission,
			&rec.LatePenalty, &rec.OtherPenalty, &rec.CashAdvance,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
