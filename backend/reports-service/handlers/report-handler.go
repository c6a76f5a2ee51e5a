package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"projectflow/backend/logging"
	"projectflow/backend/reports-service/models"
	"projectflow/backend/reports-service/services"
	"projectflow/backend/utils"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.service.Templates())
}

func (h *ReportHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.service.Options())
}

func (h *ReportHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	reports, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		logging.Logger.Errorf("Event ID: REPORTS_LIST_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := utils.CheckRole(r, utils.EditorRoles); err != nil {
		logging.Logger.Warnf("Event ID: REPORT_FORBIDDEN, Description: %v", err)
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	var req models.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	report, err := h.service.Generate(r.Context(), req)
	switch {
	case errors.Is(err, services.ErrUnknownTemplate),
		errors.Is(err, services.ErrInvalidFormat),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrUnknownProject),
		errors.Is(err, services.ErrUnknownTeam):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		logging.Logger.Errorf("Event ID: REPORT_GENERATE_FAILED, Description: %v", err)
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, report)
}
