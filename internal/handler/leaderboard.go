package handler

import (
	"net/http"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/leaderboard"
)

// LeaderboardHandler serves the XP leaderboard
type LeaderboardHandler struct {
	board leaderboard.Leaderboard
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(board leaderboard.Leaderboard) *LeaderboardHandler {
	return &LeaderboardHandler{board: board}
}

// LeaderboardResponse is the ranked list of top users
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// HandleGetLeaderboard returns the top users by XP
// @Summary XP leaderboard
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries (default 10, max 100)"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func (h *LeaderboardHandler) HandleGetLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntQueryParam(r, w, ParamLimit, leaderboard.DefaultLimit)
		if !ok {
			return
		}

		entries, err := h.board.Top(r.Context(), leaderboard.ClampLimit(limit))
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}
		if entries == nil {
			entries = []domain.LeaderboardEntry{}
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}
