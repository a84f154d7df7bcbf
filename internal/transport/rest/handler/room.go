package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"memeclash/internal/cache"
	"memeclash/internal/game"
	"memeclash/internal/transport/rest/middleware"
)

// RoomHandler handles room lifecycle endpoints.
type RoomHandler struct {
	roomSvc     *game.RoomService
	leaderboard cache.LeaderboardCache
}

// NewRoomHandler creates a new room handler. leaderboard may be nil when
// no Redis is wired (the endpoint then 404s).
func NewRoomHandler(roomSvc *game.RoomService, leaderboard cache.LeaderboardCache) *RoomHandler {
	return &RoomHandler{
		roomSvc:     roomSvc,
		leaderboard: leaderboard,
	}
}

// CreateRoomRequest is the request body for creating a room.
type CreateRoomRequest struct {
	ThemeID string `json:"themeId"`
}

// Create handles POST /v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ThemeID == "" {
		req.ThemeID = "starter"
	}

	room, err := h.roomSvc.CreateRoom(r.Context(), req.ThemeID, middleware.GetIdentity(r.Context()))
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

// CreateWithCode handles POST /v1/rooms/{code}, the recovery path when a
// join found no room at a code the user believes in.
func (h *RoomHandler) CreateWithCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ThemeID == "" {
		req.ThemeID = "starter"
	}

	room, err := h.roomSvc.CreateRoomWithCode(r.Context(), code, req.ThemeID, middleware.GetIdentity(r.Context()))
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

// Get handles GET /v1/rooms/{code}, the polling endpoint. The whole room
// snapshot is returned and clients replace their view wholesale.
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	room, err := h.roomSvc.GetRoom(r.Context(), code)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if room == nil {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// Join handles POST /v1/rooms/{code}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	room, err := h.roomSvc.JoinRoom(r.Context(), code, middleware.GetIdentity(r.Context()))
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// Start handles POST /v1/rooms/{code}/start
func (h *RoomHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	room, err := h.roomSvc.StartGame(r.Context(), code, middleware.GetIdentity(r.Context()))
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// SubmitRequest is the request body for playing a caption.
type SubmitRequest struct {
	Text string `json:"text"`
}

// Submit handles POST /v1/rooms/{code}/submit
func (h *RoomHandler) Submit(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "caption text is required")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	room, err := h.roomSvc.SubmitCard(r.Context(), code, identity.ID, req.Text)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if room == nil {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// VoteRequest is the request body for the round's vote.
type VoteRequest struct {
	CardID string `json:"cardId"`
}

// Vote handles POST /v1/rooms/{code}/vote
func (h *RoomHandler) Vote(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.roomSvc.Vote(r.Context(), code, req.CardID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if room == nil {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// Leaderboard handles GET /v1/rooms/{code}/leaderboard
func (h *RoomHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if h.leaderboard == nil {
		writeError(w, http.StatusNotFound, "leaderboard not available")
		return
	}

	code := game.NormalizeCode(mux.Vars(r)["code"])

	top := 20
	if s := r.URL.Query().Get("top"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			top = n
		}
	}

	entries, err := h.leaderboard.GetTop(r.Context(), code, top)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
