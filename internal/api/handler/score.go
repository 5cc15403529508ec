package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"arcade/internal/api/request"
	"arcade/internal/api/response"
	"arcade/internal/model"
	"arcade/internal/services/score"
)

// ScoreHandler handles score submission and leaderboard endpoints
type ScoreHandler struct {
	scoreService *score.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreService *score.Service) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// Submit handles POST /api/v1/scores
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.UserID == "" {
		WriteError(w, NewInvalidRequestError("user_id is required"))
		return
	}
	if req.Score < 0 {
		WriteError(w, NewInvalidRequestError("score must not be negative"))
		return
	}

	entry, err := h.scoreService.Submit(r.Context(),
		model.UserID(req.UserID), req.Username,
		req.Score, req.LevelReached, req.CoinsCollected, req.GameDuration)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ScoreEntryFromModel(entry))
}

// Leaderboard handles GET /api/v1/scores
func (h *ScoreHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	entries, err := h.scoreService.TopScores(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreEntriesFromModel(entries))
}

// UserScores handles GET /api/v1/scores/user/{user_id}
func (h *ScoreHandler) UserScores(w http.ResponseWriter, r *http.Request) {
	userID := model.UserID(mux.Vars(r)["user_id"])

	limit, err := parseLimit(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	entries, err := h.scoreService.UserScores(r.Context(), userID, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreEntriesFromModel(entries))
}

// parseLimit reads the optional limit query parameter. Absent means the
// service default; present, it must be a positive integer.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, NewInvalidRequestError("limit must be a positive integer")
	}
	return limit, nil
}
