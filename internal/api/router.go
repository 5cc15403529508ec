package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"arcade/internal/api/handler"
	apimiddleware "arcade/internal/api/middleware"
	"arcade/internal/middleware"
	"arcade/internal/services/identity"
	"arcade/internal/services/progress"
	"arcade/internal/services/score"
	"arcade/internal/services/session"
	"arcade/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	IdentityService *identity.Service
	SessionService  *session.Service
	ScoreService    *score.Service
	ProgressService *progress.Service
	StatsService    *stats.Service
}

// NewRouter creates a new API router with all routes configured.
// User-scoped operations are keyed by user id alone; session tokens are
// issued on login but not required by any route.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.IdentityService, cfg.SessionService)
	scoreHandler := handler.NewScoreHandler(cfg.ScoreService)
	progressHandler := handler.NewProgressHandler(cfg.ProgressService)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// User routes
	api.HandleFunc("/users", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/{user_id}", userHandler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", userHandler.Login).Methods(http.MethodPost)

	// Score routes
	api.HandleFunc("/scores", scoreHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/scores", scoreHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/scores/user/{user_id}", scoreHandler.UserScores).Methods(http.MethodGet)

	// Progress routes
	api.HandleFunc("/progress", progressHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/progress/{user_id}", progressHandler.Load).Methods(http.MethodGet)
	api.HandleFunc("/progress/{user_id}", progressHandler.Delete).Methods(http.MethodDelete)

	// Stats routes
	api.HandleFunc("/stats/global", statsHandler.Global).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
