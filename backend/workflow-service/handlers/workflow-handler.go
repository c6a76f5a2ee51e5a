package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"projectflow/backend/logging"
	"projectflow/backend/utils"
	"projectflow/backend/workflow-service/models"
	"projectflow/backend/workflow-service/services"
	"projectflow/backend/workflow-service/services/commands"
	"projectflow/backend/workflow-service/services/queries"

	"github.com/gorilla/mux"
)

type WorkflowHandler struct {
	WorkflowService *services.WorkflowService
}

func NewWorkflowHandler(service *services.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{WorkflowService: service}
}

func (h *WorkflowHandler) AddDependency(w http.ResponseWriter, r *http.Request) {
	var relation models.TaskDependencyRelation
	if err := json.NewDecoder(r.Body).Decode(&relation); err != nil {
		logging.Logger.Errorf("Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	handler := commands.NewAddDependencyHandler(h.WorkflowService)
	err := handler.Handle(r.Context(), commands.AddDependencyCommand{Dependency: relation})
	switch {
	case errors.Is(err, services.ErrMissingTaskIDs):
		http.Error(w, "Missing task IDs", http.StatusBadRequest)
		return
	case errors.Is(err, services.ErrTaskNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, services.ErrDependencyExists):
		http.Error(w, "Dependency already exists", http.StatusConflict)
		return
	case errors.Is(err, services.ErrCycleDetected):
		http.Error(w, "Cannot add dependency due to cycle", http.StatusConflict)
		return
	case err != nil:
		logging.Logger.Errorf("Failed to add dependency: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("Dependency successfully added"))
}

func (h *WorkflowHandler) RemoveDependency(w http.ResponseWriter, r *http.Request) {
	var relation models.TaskDependencyRelation
	if err := json.NewDecoder(r.Body).Decode(&relation); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	handler := commands.NewRemoveDependencyHandler(h.WorkflowService)
	err := handler.Handle(r.Context(), commands.RemoveDependencyCommand{FromTaskID: relation.FromTaskID, ToTaskID: relation.ToTaskID})
	switch {
	case errors.Is(err, services.ErrMissingTaskIDs):
		http.Error(w, "Missing task IDs", http.StatusBadRequest)
		return
	case errors.Is(err, services.ErrDependencyNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		logging.Logger.Errorf("Failed to remove dependency: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *WorkflowHandler) EnsureTaskNode(w http.ResponseWriter, r *http.Request) {
	var taskNode models.TaskNode
	if err := json.NewDecoder(r.Body).Decode(&taskNode); err != nil {
		logging.Logger.Errorf("Failed to decode task node: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.WorkflowService.EnsureTaskNode(r.Context(), taskNode)
	if errors.Is(err, services.ErrInvalidTaskNode) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		logging.Logger.Errorf("Failed to ensure task node: %v", err)
		http.Error(w, "Failed to ensure task node: "+err.Error(), http.StatusInternalServerError)
		return
	}

	logging.Logger.Infof("Task node ensured: %s", taskNode.ID)
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("Task node ensured"))
}

func (h *WorkflowHandler) GetDependencies(w http.ResponseWriter, r *http.Request) {
	query := queries.GetDependenciesQuery{TaskID: mux.Vars(r)["taskId"], Svc: h.WorkflowService}
	deps, err := query.Execute(r.Context())
	if err != nil {
		logging.Logger.Errorf("Failed to get dependencies: %v", err)
		http.Error(w, "Failed to get dependencies: "+err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, deps)
}

func (h *WorkflowHandler) GetWorkflowGraph(w http.ResponseWriter, r *http.Request) {
	query := queries.GetWorkflowGraphQuery{ProjectID: mux.Vars(r)["projectId"], Svc: h.WorkflowService}
	graph, err := query.Execute(r.Context())
	if err != nil {
		logging.Logger.Errorf("Failed to get workflow graph for project %s: %v", query.ProjectID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logging.Logger.Infof("Workflow graph loaded for project %s: nodes=%d, dependencies=%d", query.ProjectID, len(graph.Nodes), len(graph.Dependencies))
	utils.WriteJSON(w, http.StatusOK, graph)
}
