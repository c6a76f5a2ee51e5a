package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"projectflow/backend/logging"
	"projectflow/backend/logistics-service/models"
	"projectflow/backend/logistics-service/services"
	"projectflow/backend/utils"
)

type LogisticsHandler struct {
	service *services.LogisticsService
}

func NewLogisticsHandler(service *services.LogisticsService) *LogisticsHandler {
	return &LogisticsHandler{service: service}
}

func filterFromQuery(r *http.Request) models.LogisticsFilter {
	q := r.URL.Query()
	return models.LogisticsFilter{Search: q.Get("search"), Status: q.Get("status")}
}

func (h *LogisticsHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.service.ListRoutes(r.Context(), filterFromQuery(r))
	if err != nil {
		logging.Logger.Errorf("Event ID: ROUTES_LIST_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, routes)
}

func (h *LogisticsHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.service.ListResources(r.Context(), filterFromQuery(r))
	if err != nil {
		logging.Logger.Errorf("Event ID: RESOURCES_LIST_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, resources)
}

func (h *LogisticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}

func (h *LogisticsHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req models.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Optimize(r.Context(), req)
	switch {
	case errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidVehicleType),
		errors.Is(err, services.ErrInvalidMaxStops),
		errors.Is(err, services.ErrTooManyLocations),
		errors.Is(err, services.ErrInvalidTimeWindow):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		logging.Logger.Errorf("Event ID: OPTIMIZE_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
