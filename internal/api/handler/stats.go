package handler

import (
	"net/http"

	"arcade/internal/api/response"
	"arcade/internal/services/stats"
)

// StatsHandler handles the global statistics endpoint
type StatsHandler struct {
	statsService *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Global handles GET /api/v1/stats/global
func (h *StatsHandler) Global(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.Global(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GlobalStatsFromModel(result))
}
