package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fundsight/Fund-Analytics-Backend/internal/api/response"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
)

// GatewayHandler is the catch-all for /api/* routes without a dedicated
// handler. It forwards to the dispatcher, which resolves unimplemented
// endpoints to an empty object so the dashboard never crashes on a
// missing route. The X-Endpoint-Unhandled header carries the tagged
// NotImplemented outcome for callers that want to distinguish missing
// wiring from a legitimately empty result.
type GatewayHandler struct {
	dispatcher *service.Dispatcher
}

// NewGatewayHandler creates a new GatewayHandler over the dispatcher.
func NewGatewayHandler(dispatcher *service.Dispatcher) *GatewayHandler {
	return &GatewayHandler{
		dispatcher: dispatcher,
	}
}

// Dispatch handles any method on /api/{endpoint...}.
//
// Response: always 200 OK; unhandled endpoints get an empty object and
// the X-Endpoint-Unhandled: true header.
func (h *GatewayHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	endpoint := strings.TrimPrefix(chi.URLParam(r, "*"), "/")

	queryParams := map[string]string{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			queryParams[key] = values[0]
		}
	}

	result := h.dispatcher.Dispatch(r.Context(), endpoint, r.Method, nil, queryParams)
	if !result.Handled {
		w.Header().Set("X-Endpoint-Unhandled", "true")
	}

	response.RespondJSON(w, http.StatusOK, result.Value)
}
