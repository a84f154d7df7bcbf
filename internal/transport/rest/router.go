package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"memeclash/internal/cache"
	"memeclash/internal/game"
	"memeclash/internal/transport/rest/handler"
	"memeclash/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService *game.AuthService
	RoomService *game.RoomService
	SoloService *game.SoloService
	Leaderboard cache.LeaderboardCache
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	roomHandler := handler.NewRoomHandler(c.RoomService, c.Leaderboard)
	soloHandler := handler.NewSoloHandler(c.SoloService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/guest", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireIdentity)

	authed.HandleFunc("/rooms", roomHandler.Create).Methods("POST", "OPTIONS")
	authed.HandleFunc("/rooms/{code}", roomHandler.CreateWithCode).Methods("POST", "OPTIONS")
	authed.HandleFunc("/rooms/{code}", roomHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/rooms/{code}/join", roomHandler.Join).Methods("POST", "OPTIONS")
	authed.HandleFunc("/rooms/{code}/start", roomHandler.Start).Methods("POST", "OPTIONS")
	authed.HandleFunc("/rooms/{code}/submit", roomHandler.Submit).Methods("POST", "OPTIONS")
	authed.HandleFunc("/rooms/{code}/vote", roomHandler.Vote).Methods("POST", "OPTIONS")
	authed.HandleFunc("/rooms/{code}/leaderboard", roomHandler.Leaderboard).Methods("GET", "OPTIONS")

	authed.HandleFunc("/solo/rounds", soloHandler.NewRound).Methods("POST", "OPTIONS")
	authed.HandleFunc("/solo/judge", soloHandler.Judge).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
