package handler

import (
	"encoding/json"
	"net/http"

	"memeclash/internal/game"
	"memeclash/internal/model"
)

// AuthHandler handles guest identity endpoints.
type AuthHandler struct {
	authSvc *game.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authSvc *game.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /v1/auth/guest
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.GuestLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authSvc.Login(req.Name, req.Avatar)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
