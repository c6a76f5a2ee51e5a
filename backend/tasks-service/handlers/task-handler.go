package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/tasks-service/models"
	"projectflow/backend/tasks-service/repositories"
	"projectflow/backend/tasks-service/services"
	"projectflow/backend/utils"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func filterFromQuery(r *http.Request) models.TaskFilter {
	q := r.URL.Query()
	return models.TaskFilter{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Project:  q.Get("project"),
		Assignee: q.Get("assignee"),
	}
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListTasks(r.Context(), filterFromQuery(r))
	if err != nil {
		logging.Logger.Errorf("Event ID: TASKS_LIST_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) GetKanban(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Kanban(r.Context(), filterFromQuery(r))
	if err != nil {
		logging.Logger.Errorf("Event ID: KANBAN_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, board)
}

func (h *TaskHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	asOf := services.ReferenceDate
	if raw := r.URL.Query().Get("asOf"); raw != "" {
		parsed, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			http.Error(w, "asOf must be formatted as YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		asOf = parsed
	}

	stats, err := h.service.Stats(r.Context(), asOf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskId"]

	task, err := h.service.GetTask(r.Context(), taskID)
	if errors.Is(err, repositories.ErrTaskNotFound) {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	if err := utils.CheckRole(r, utils.EditorRoles); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	forward := http.Header{}
	for _, key := range []string{"Authorization", "Role"} {
		if v := r.Header.Get(key); v != "" {
			forward.Set(key, v)
		}
	}

	task, err := h.service.CreateTask(r.Context(), req, forward)
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidDueDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		logging.Logger.Errorf("Event ID: TASK_CREATE_FAILED, Description: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, task)
}
