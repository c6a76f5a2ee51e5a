package handlers

import (
	"net/http"
	"strconv"

	"projectflow/backend/analytics-service/services"
	"projectflow/backend/logging"
	"projectflow/backend/utils"
)

type AnalyticsHandler struct {
	gantt     *services.GanttService
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(gantt *services.GanttService, analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{gantt: gantt, analytics: analytics}
}

func (h *AnalyticsHandler) GetGantt(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	clamp := false
	if raw := q.Get("clamp"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "clamp must be true or false", http.StatusBadRequest)
			return
		}
		clamp = parsed
	}

	chart, err := h.gantt.Chart(r.Context(), q.Get("project"), clamp)
	if err != nil {
		logging.Logger.Errorf("Event ID: GANTT_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, chart)
}

func (h *AnalyticsHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.analytics.Projects(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, projects)
}

func (h *AnalyticsHandler) GetCriticalPath(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.analytics.CriticalPath(r.URL.Query().Get("project")))
}

func (h *AnalyticsHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.analytics.Team(r.Context())
	if err != nil {
		logging.Logger.Errorf("Event ID: TEAM_ANALYTICS_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, team)
}

func (h *AnalyticsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.analytics.Stats())
}
