package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fundsight/Fund-Analytics-Backend/internal/api/response"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
	"github.com/fundsight/Fund-Analytics-Backend/internal/validation"
)

// ResearchHandler handles HTTP requests for the LLM-backed search and
// research endpoints. Every endpoint resolves with 200: a missing or
// failing research backend degrades to a placeholder message, never to
// an error status the UI would have to special-case.
type ResearchHandler struct {
	researchService *service.ResearchService
	dispatcher      *service.Dispatcher
}

// NewResearchHandler creates a new ResearchHandler with the provided dependencies.
func NewResearchHandler(researchService *service.ResearchService, dispatcher *service.Dispatcher) *ResearchHandler {
	return &ResearchHandler{
		researchService: researchService,
		dispatcher:      dispatcher,
	}
}

// Search handles free-text search queries.
//
// Endpoint: GET /api/search?q=<query>
// Response: 200 OK with {message}
func (h *ResearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result := h.dispatcher.Dispatch(r.Context(), "search", http.MethodGet, nil, map[string]string{"q": query})
	response.RespondJSON(w, http.StatusOK, result.Value)
}

// FundResearch handles structured research requests for one fund.
//
// Endpoint: GET /api/fund/{fundId}/research?timeframe=1y
// Response: 200 OK with {researchCharts} or a free-text {message}
// Error: 400 Bad Request on an unknown timeframe
func (h *ResearchHandler) FundResearch(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")
	timeframe := r.URL.Query().Get("timeframe")

	if err := validation.ValidateTimeframe(timeframe); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result := h.researchService.FundResearch(r.Context(), fundID, timeframe)
	response.RespondJSON(w, http.StatusOK, result)
}

// Compare handles multi-fund comparison requests.
//
// Endpoint: GET /api/fund/compare?ids=a,b,c
// Response: 200 OK with {message}
// Error: 400 Bad Request when no ids are supplied
func (h *ResearchHandler) Compare(w http.ResponseWriter, r *http.Request) {
	ids := splitIDs(r.URL.Query().Get("ids"))

	if err := validation.ValidateFundIDs(ids); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result := h.researchService.CompareFunds(r.Context(), ids)
	response.RespondJSON(w, http.StatusOK, result)
}

// Performance handles detailed performance analysis requests.
//
// Endpoint: GET /api/fund/{fundId}/performance?timeframe=1y
// Response: 200 OK with {message}
// Error: 400 Bad Request on an unknown timeframe
func (h *ResearchHandler) Performance(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")
	timeframe := r.URL.Query().Get("timeframe")

	if err := validation.ValidateTimeframe(timeframe); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result := h.researchService.PerformanceDetails(r.Context(), fundID, timeframe)
	response.RespondJSON(w, http.StatusOK, result)
}

// Risk handles risk analysis requests.
//
// Endpoint: GET /api/fund/{fundId}/risk
// Response: 200 OK with {message}
func (h *ResearchHandler) Risk(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	result := h.researchService.RiskAnalysis(r.Context(), fundID)
	response.RespondJSON(w, http.StatusOK, result)
}

// splitIDs splits a comma-separated id list, dropping surrounding
// whitespace and empty entries.
func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
