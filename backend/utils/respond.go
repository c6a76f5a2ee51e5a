package utils

import (
	"encoding/json"
	"net/http"
	"strings"

	"projectflow/backend/logging"
)

// WriteJSON encodes payload with the given status code.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Logger.Errorf("Event ID: RESPONSE_ENCODE_FAILED, Description: Failed to encode response: %v", err)
	}
}

// WriteDetail writes the {"detail": "..."} error body the auth endpoints use.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, map[string]string{"detail": detail})
}

// CheckRole verifies the Role header set by the gateway against allowedRoles.
func CheckRole(r *http.Request, allowedRoles []string) error {
	userRole := r.Header.Get("Role")
	if userRole == "" {
		return ErrRoleMissing
	}

	for _, role := range allowedRoles {
		if strings.EqualFold(role, userRole) {
			return nil
		}
	}
	return ErrRoleForbidden
}

// EditorRoles may create projects, tasks and reports. Matching ignores case.
var EditorRoles = []string{"Admin", "Planner", "project-manager", "team-lead"}
