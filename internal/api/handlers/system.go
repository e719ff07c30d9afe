package handlers

import (
	"net/http"

	"github.com/fundsight/Fund-Analytics-Backend/internal/api/response"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Feed     string `json:"feed"`
	Error    string `json:"error,omitempty"`
}

// VersionResponse represents the version response
type VersionResponse struct {
	Version string `json:"version"`
}

// Health checks the health of the system: database connectivity plus
// the fund cache state. An empty feed is still healthy; it means the
// one-time ingestion has not succeeded yet.
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	feedStatus, feedErr := h.systemService.FeedStatus()

	if err := h.systemService.CheckHealth(); err != nil {
		resp := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Feed:     feedStatus,
			Error:    err.Error(),
		}
		response.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp := HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Feed:     feedStatus,
	}
	if feedErr != nil {
		resp.Error = feedErr.Error()
	}
	response.RespondJSON(w, http.StatusOK, resp)
}

// Version returns the running service version.
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, VersionResponse{
		Version: h.systemService.CheckVersion(),
	})
}
