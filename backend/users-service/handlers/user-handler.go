package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"projectflow/backend/logging"
	"projectflow/backend/users-service/middleware"
	"projectflow/backend/users-service/models"
	"projectflow/backend/users-service/repositories"
	"projectflow/backend/users-service/services"
	"projectflow/backend/utils"
)

const networkErrorDetail = "Network error or server is unreachable. Please ensure the backend is running."

type UserHandler struct {
	UserService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{UserService: userService}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteDetail(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := h.UserService.LoginUser(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		logging.Logger.Warnf("Event ID: LOGIN_FAILED, Description: Invalid credentials for %s", req.Email)
		utils.WriteDetail(w, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
		return
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: LOGIN_ERROR, Description: %v", err)
		utils.WriteDetail(w, http.StatusInternalServerError, networkErrorDetail)
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteDetail(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	_, err := h.UserService.RegisterUser(r.Context(), req)
	switch {
	case errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrUnknownRole):
		utils.WriteDetail(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, repositories.ErrEmailTaken):
		utils.WriteDetail(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		logging.Logger.Errorf("Event ID: REGISTER_ERROR, Description: %v", err)
		utils.WriteDetail(w, http.StatusInternalServerError, "Registration failed. Please try again.")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, models.RegisterResponse{
		Message:  "Account created successfully",
		Redirect: services.DashboardRedirect,
	})
}

func (h *UserHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.UserService.GetSession(r.Context(), middleware.TokenFromContext(r.Context()))
	if errors.Is(err, repositories.ErrSessionNotFound) {
		utils.WriteDetail(w, http.StatusUnauthorized, "Session not found")
		return
	}
	if err != nil {
		utils.WriteDetail(w, http.StatusInternalServerError, networkErrorDetail)
		return
	}

	utils.WriteJSON(w, http.StatusOK, session)
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.UserService.Logout(r.Context(), middleware.TokenFromContext(r.Context()))
	if err != nil && !errors.Is(err, repositories.ErrSessionNotFound) {
		utils.WriteDetail(w, http.StatusInternalServerError, networkErrorDetail)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
