package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"arcade/internal/api/request"
	"arcade/internal/api/response"
	"arcade/internal/model"
	"arcade/internal/services/progress"
)

// ProgressHandler handles save-checkpoint endpoints
type ProgressHandler struct {
	progressService *progress.Service
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *progress.Service) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// Save handles POST /api/v1/progress
func (h *ProgressHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req request.SaveProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.UserID == "" {
		WriteError(w, NewInvalidRequestError("user_id is required"))
		return
	}

	powerUps := make([]model.PowerUp, len(req.PowerUps))
	for i, p := range req.PowerUps {
		powerUps[i] = model.PowerUp(p)
	}

	cp := &model.ProgressCheckpoint{
		UserID:         model.UserID(req.UserID),
		CurrentLevel:   req.CurrentLevel,
		LivesRemaining: req.LivesRemaining,
		Score:          req.Score,
		Coins:          req.Coins,
		PowerUps:       powerUps,
		LastCheckpoint: model.Checkpoint{
			Level: req.LastCheckpoint.Level,
			Zone:  req.LastCheckpoint.Zone,
			X:     req.LastCheckpoint.X,
			Y:     req.LastCheckpoint.Y,
		},
	}

	saved, err := h.progressService.Save(r.Context(), cp)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressFromModel(saved))
}

// Load handles GET /api/v1/progress/{user_id}
func (h *ProgressHandler) Load(w http.ResponseWriter, r *http.Request) {
	userID := model.UserID(mux.Vars(r)["user_id"])

	cp, err := h.progressService.Load(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressFromModel(cp))
}

// Delete handles DELETE /api/v1/progress/{user_id}
func (h *ProgressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := model.UserID(mux.Vars(r)["user_id"])

	if err := h.progressService.Delete(r.Context(), userID); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "Progress deleted successfully"})
}
