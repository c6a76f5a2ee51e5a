package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"projectflow/backend/logging"
	"projectflow/backend/projects-service/models"
	"projectflow/backend/projects-service/repositories"
	"projectflow/backend/projects-service/services"
	"projectflow/backend/utils"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	projects, err := h.service.ListProjects(r.Context(), models.ProjectFilter{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
	})
	if err != nil {
		logging.Logger.Errorf("Event ID: PROJECTS_LIST_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.GetProject(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, repositories.ErrProjectNotFound) {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := utils.CheckRole(r, utils.EditorRoles); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	project, err := h.service.CreateProject(r.Context(), req)
	switch {
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrInvalidProgress),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidDates),
		errors.Is(err, services.ErrNegativeValue):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		logging.Logger.Errorf("Event ID: PROJECT_CREATE_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, project)
}
