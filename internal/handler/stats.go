package handler

import (
	"net/http"
)

// StatsHandler обрабатывает эндпоинты статистики
type StatsHandler struct {
	statsService StatsService
}

// NewStatsHandler создает новый StatsHandler
func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats обрабатывает GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStats(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, stats)
}
