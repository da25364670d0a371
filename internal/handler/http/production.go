package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bersihkilat/erp-backend-go/internal/domain/production"
	"github.com/bersihkilat/erp-backend-go/internal/handler/http/response"
)

type ProductionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type ProductionHandlerImpl struct {
	productionService production.ProductionService
}

func NewProductionHandler(productionService production.ProductionService) ProductionHandler {
	return &ProductionHandlerImpl{
		productionService: productionService,
	}
}

// Create implements ProductionHandler.
func (p *ProductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq production.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Production create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := p.productionService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Production create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Production entry recorded", entry)
}

// ListMine implements ProductionHandler.
func (p *ProductionHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
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

	entries, err := p.productionService.ListMine(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("Production list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
