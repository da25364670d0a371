package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bersihkilat/erp-backend-go/internal/domain/commission"
	"github.com/bersihkilat/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CommissionHandler interface {
	UpsertRate(w http.ResponseWriter, r *http.Request)
	ListRates(w http.ResponseWriter, r *http.Request)
	PeriodReport(w http.ResponseWriter, r *http.Request)
	MyPeriodReport(w http.ResponseWriter, r *http.Request)
}

type CommissionHandlerImpl struct {
	commissionService commission.CommissionService
}

func NewCommissionHandler(commissionService commission.CommissionService) CommissionHandler {
	return &CommissionHandlerImpl{
		commissionService: commissionService,
	}
}

// UpsertRate implements CommissionHandler.
func (c *CommissionHandlerImpl) UpsertRate(w http.ResponseWriter, r *http.Request) {
	var rateReq commission.UpsertRateRequest
	if err := json.NewDecoder(r.Body).Decode(&rateReq); err != nil {
		slog.Error("UpsertRate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rate, err := c.commissionService.UpsertRate(r.Context(), rateReq)
	if err != nil {
		slog.Error("UpsertRate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Commission rate saved", rate)
}

// ListRates implements CommissionHandler.
func (c *CommissionHandlerImpl) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := c.commissionService.ListRates(r.Context())
	if err != nil {
		slog.Error("ListRates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rates)
}

// PeriodReport implements CommissionHandler. Admin view of one employee's
// commission for a period.
func (c *CommissionHandlerImpl) PeriodReport(w http.ResponseWriter, r *http.Request) {
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

	report, err := c.commissionService.PeriodReport(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("PeriodReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// MyPeriodReport implements CommissionHandler.
func (c *CommissionHandlerImpl) MyPeriodReport(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be integers", nil)
		return
	}

	report, err := c.commissionService.PeriodReport(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("MyPeriodReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
