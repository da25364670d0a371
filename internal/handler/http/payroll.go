package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bersihkilat/erp-backend-go/internal/domain/payroll"
	"github.com/bersihkilat/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListPeriod(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Upsert implements PayrollHandler.
func (p *PayrollHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var upsertReq payroll.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Payroll upsert decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := p.payrollService.Upsert(r.Context(), upsertReq)
	if err != nil {
		slog.Error("Payroll upsert service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll saved", record)
}

// Get implements PayrollHandler.
func (p *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be integers", nil)
		return
	}

	record, err := p.payrollService.Get(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("Payroll get service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// ListPeriod implements PayrollHandler.
func (p *PayrollHandlerImpl) ListPeriod(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be integers", nil)
		return
	}

	records, err := p.payrollService.ListPeriod(r.Context(), month, year)
	if err != nil {
		slog.Error("Payroll list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Generate implements PayrollHandler.
func (p *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var generateReq payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("Payroll generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := p.payrollService.Generate(r.Context(), generateReq)
	if err != nil {
		slog.Error("Payroll generate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll generated", "user_id", generateReq.UserID, "month", generateReq.Month, "year", generateReq.Year)
	response.SuccessWithMessage(w, "Payroll generated", record)
}
