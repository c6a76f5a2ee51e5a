package handlers

import (
	"errors"
	"net/http"

	"projectflow/backend/api-composer-service/services"
	"projectflow/backend/logging"
	"projectflow/backend/utils"

	"github.com/gorilla/mux"
)

type ComposerHandler struct {
	service *services.ComposerService
}

func NewComposerHandler(service *services.ComposerService) *ComposerHandler {
	return &ComposerHandler{service: service}
}

// forwardHeaders keeps the caller's identity on downstream calls.
func forwardHeaders(r *http.Request) http.Header {
	h := http.Header{}
	for _, key := range []string{"Authorization", "Role"} {
		if v := r.Header.Get(key); v != "" {
			h.Set(key, v)
		}
	}
	return h
}

func (h *ComposerHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview := h.service.Overview(r.Context(), forwardHeaders(r), r.URL.Query().Get("asOf"))
	utils.WriteJSON(w, http.StatusOK, overview)
}

func (h *ComposerHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	graph, err := h.service.Graph(r.Context(), projectID, forwardHeaders(r))
	if err != nil {
		logging.Logger.Errorf("Event ID: GRAPH_COMPOSE_FAILED, Description: %v", err)
		var statusErr *utils.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	utils.WriteJSON(w, http.StatusOK, graph)
}
