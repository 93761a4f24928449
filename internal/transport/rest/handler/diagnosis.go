package handler

import (
	"encoding/json"
	"net/http"

	"dancenavi/internal/catalog"
	"dancenavi/internal/model"
	"dancenavi/internal/service"
	"dancenavi/internal/transport/rest/middleware"

	"go.uber.org/zap"
)

// DiagnosisHandler handles the diagnosis endpoints
type DiagnosisHandler struct {
	diagnosisSvc *service.DiagnosisService
	catalog      *catalog.Catalog
	logger       *zap.Logger
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(diagnosisSvc *service.DiagnosisService, cat *catalog.Catalog, logger *zap.Logger) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisSvc: diagnosisSvc,
		catalog:      cat,
		logger:       logger,
	}
}

// Questions handles GET /v1/diagnosis/questions
func (h *DiagnosisHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.catalog.Questions(),
	})
}

// Resolve handles POST /v1/diagnosis/result
func (h *DiagnosisHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req model.DiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// A token-pinned tenant always wins over the body value
	if schoolID := middleware.GetSchoolID(r.Context()); schoolID != "" {
		req.SchoolID = schoolID
	}

	resp, err := h.diagnosisSvc.Diagnose(r.Context(), &req)
	if err != nil {
		diagErr := service.AsError(err)
		if diagErr.Code == service.CodeInternal {
			h.logger.Error("diagnosis failed", zap.Error(err))
		}
		writeJSON(w, diagErr.Status, map[string]string{
			"error": diagErr.Message,
			"code":  diagErr.Code,
		})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
