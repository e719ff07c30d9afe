package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundsight/Fund-Analytics-Backend/internal/api/request"
	"github.com/fundsight/Fund-Analytics-Backend/internal/api/response"
	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
	"github.com/fundsight/Fund-Analytics-Backend/internal/validation"
)

// DatasetHandler handles HTTP requests for uploaded fund datasets.
type DatasetHandler struct {
	uploadService *service.UploadService
}

// NewDatasetHandler creates a new DatasetHandler with the provided service dependency.
func NewDatasetHandler(uploadService *service.UploadService) *DatasetHandler {
	return &DatasetHandler{
		uploadService: uploadService,
	}
}

// Create handles dataset uploads.
//
// Endpoint: POST /api/dataset
// Body: {"name": "...", "csv": "..."} with the CSV in the upload schema
// Response: 201 Created with the parsed Dataset
// Error: 400 Bad Request on validation or parse failure
func (h *DatasetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateDatasetUpload(req.Name, req.CSV); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	dataset, err := h.uploadService.CreateDataset(req.Name, req.CSV)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCSVHeaders) || errors.Is(err, apperrors.ErrEmptyCSV) ||
			errors.Is(err, apperrors.ErrIngestion) {
			response.RespondError(w, http.StatusBadRequest, "failed to parse CSV", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store dataset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, dataset)
}

// List handles GET requests for all datasets.
//
// Endpoint: GET /api/dataset
// Response: 200 OK with array of Dataset (records omitted)
func (h *DatasetHandler) List(w http.ResponseWriter, _ *http.Request) {
	datasets, err := h.uploadService.ListDatasets()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve datasets", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, datasets)
}

// Get handles GET requests for one dataset including its records.
//
// Endpoint: GET /api/dataset/{datasetId}
// Response: 200 OK with the Dataset
// Error: 404 Not Found when the dataset does not exist
func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	datasetID := chi.URLParam(r, "datasetId")

	if err := validation.ValidateUUID(datasetID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid dataset ID", err.Error())
		return
	}

	dataset, err := h.uploadService.GetDataset(datasetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDatasetNotFound) {
			response.RespondError(w, http.StatusNotFound, "dataset not found", datasetID)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve dataset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dataset)
}
