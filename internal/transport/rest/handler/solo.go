package handler

import (
	"encoding/json"
	"net/http"

	"memeclash/internal/game"
	"memeclash/internal/model"
)

// SoloHandler handles single-player endpoints.
type SoloHandler struct {
	soloSvc *game.SoloService
}

// NewSoloHandler creates a new solo handler.
func NewSoloHandler(soloSvc *game.SoloService) *SoloHandler {
	return &SoloHandler{soloSvc: soloSvc}
}

// NewRoundRequest is the request body for dealing a solo round.
type NewRoundRequest struct {
	ThemeID string `json:"themeId"`
}

// NewRound handles POST /v1/solo/rounds
func (h *SoloHandler) NewRound(w http.ResponseWriter, r *http.Request) {
	var req NewRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ThemeID == "" {
		req.ThemeID = "starter"
	}

	round, err := h.soloSvc.NewRound(r.Context(), req.ThemeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, round)
}

// JudgeRequest is the request body for playing a solo round.
type JudgeRequest struct {
	Image   model.MemeImage `json:"image"`
	Caption string          `json:"caption"`
}

// Judge handles POST /v1/solo/judge
func (h *SoloHandler) Judge(w http.ResponseWriter, r *http.Request) {
	var req JudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Caption == "" {
		writeError(w, http.StatusBadRequest, "caption is required")
		return
	}

	outcome, err := h.soloSvc.Play(r.Context(), req.Image, req.Caption)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}
