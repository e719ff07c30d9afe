package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundsight/Fund-Analytics-Backend/internal/api/response"
	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
)

// FundHandler handles HTTP requests for fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// to the dispatcher so the funds route behaves exactly like the
// dashboard's uniform request function.
type FundHandler struct {
	fundService *service.FundService
	dispatcher  *service.Dispatcher
}

// NewFundHandler creates a new FundHandler with the provided dependencies.
func NewFundHandler(fundService *service.FundService, dispatcher *service.Dispatcher) *FundHandler {
	return &FundHandler{
		fundService: fundService,
		dispatcher:  dispatcher,
	}
}

// Funds handles GET requests to retrieve the canonical fund collection.
//
// Endpoint: GET /api/fund
// Response: 200 OK with array of FundRecord. An empty array means the
// feed has not been ingested yet, not that no funds exist.
func (h *FundHandler) Funds(w http.ResponseWriter, r *http.Request) {
	result := h.dispatcher.Dispatch(r.Context(), "funds", http.MethodGet, nil, nil)
	response.RespondJSON(w, http.StatusOK, result.Value)
}

// Fund handles GET requests for a single fund by collection ID.
//
// Endpoint: GET /api/fund/{fundId}
// Response: 200 OK with a FundRecord
// Error: 404 Not Found when the ID is not in the collection
func (h *FundHandler) Fund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	fund, err := h.fundService.GetFund(r.Context(), fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) || errors.Is(err, apperrors.ErrEmptyID) {
			response.RespondError(w, http.StatusNotFound, "fund not found", fundID)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve fund", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, fund)
}
