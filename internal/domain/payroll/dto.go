package payroll

import (
	"github.com/bersihkilat/erp-backend-go/internal/pkg/validator"
)

// UpsertRequest writes the figures for one (user, month, year). A second
// submission for the same key overwrites the previous one.
type UpsertRequest struct {
	UserID               int64   `json:"user_id"`
	Month                int     `json:"month"`
	Year                 int     `json:"year"`
	BaseSalary           int64   `json:"gaji_pokok"`
	MealAllowance        int64   `json:"uang_makan"`
	TransportAllowance   int64   `json:"uang_transport"`
	OvertimeHours        float64 `json:"lembur_jam"`
	OvertimeRate         *int64  `json:"lembur_jam_rate,omitempty"`
	HolidayOvertimeHours float64 `json:"lembur_libur"`
	HolidayOvertimeRate  *int64  `json:"lembur_libur_rate,omitempty"`
	PositionAllowance    int64   `json:"tunjangan_jabatan"`
	HolidayBonus         int64   `json:"thr"`
	TotalCommission      int64   `json:"komisi_total"`
	LatePenalty          int64   `json:"denda_terlambat"`
	OtherPenalty         int64   `json:"denda"`
	CashAdvance          int64   `json:"kasbon"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be 1-12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020-2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateRequest struct {
	UserID int64 `json:"user_id"`
	Month  int   `json:"month"`
	Year   int   `json:"year"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be 1-12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020-2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                   int64   `json:"id"`
	UserID               int64   `json:"user_id"`
	UserName             *string `json:"user_name,omitempty"`
	Month                int     `json:"month"`
	Year                 int     `json:"year"`
	BaseSalary           int64   `json:"gaji_pokok"`
	MealAllowance        int64   `json:"uang_makan"`
	TransportAllowance   int64   `json:"uang_transport"`
	OvertimeHours        float64 `json:"lembur_jam"`
	OvertimeRate         *int64  `json:"lembur_jam_rate,omitempty"`
	HolidayOvertimeHours float64 `json:"lembur_libur"`
	HolidayOvertimeRate  *int64  `json:"lembur_libur_rate,omitempty"`
	PositionAllowance    int64   `json:"tunjangan_jabatan"`
	HolidayBonus         int64   `json:"thr"`
	TotalCommission      int64   `json:"komisi_total"`
	LatePenalty          int64   `json:"denda_terlambat"`
	OtherPenalty         int64   `json:"denda"`
	CashAdvance          int64   `json:"kasbon"`

	// Derived
	OvertimeRegularTotal int64 `json:"lembur_jam_total"`
	OvertimeHolidayTotal int64 `json:"lembur_libur_total"`
	GrossIncome          int64 `json:"pendapatan"`
	TotalDeductions      int64 `json:"potongan"`
	NetSalary            int64 `json:"gaji_bersih"`
}
