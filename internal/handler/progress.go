package handler

import (
	"net/http"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/logger"
	"github.com/osse101/TaskQuest_Go/internal/progress"
)

// ProgressHandler contains HTTP handlers for the progress system
type ProgressHandler struct {
	service progress.Service
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(service progress.Service) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// AwardXPRequest is the request body for a direct XP award
type AwardXPRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	XP     int    `json:"xp" validate:"min=0,max=1000000"`
}

// AchievementsResponse lists the catalog with the user's unlock state
type AchievementsResponse struct {
	UserID       string                         `json:"user_id"`
	Achievements []domain.AchievementWithStatus `json:"achievements"`
}

// ActivityResponse lists recent activity, newest first
type ActivityResponse struct {
	UserID  string                    `json:"user_id"`
	Entries []domain.ActivityLogEntry `json:"entries"`
}

// HandleAwardXP applies an XP award and returns what changed
// @Summary Award XP
// @Description Adds XP, updates the daily streak and unlocks qualifying achievements. Callers may only award to themselves unless acting as system.
// @Tags progress
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller user id"
// @Param request body AwardXPRequest true "Award"
// @Success 200 {object} domain.ProgressResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/progress/award [post]
func (h *ProgressHandler) HandleAwardXP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := GetCallerID(r, w)
		if !ok {
			return
		}

		var req AwardXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Award XP"); err != nil {
			return
		}

		result, err := h.service.UpdateProgress(r.Context(), callerID, req.UserID, req.XP)
		if err != nil {
			respondServiceError(w, r, "Award XP", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgXPAwarded,
			"actor_id", callerID, "user_id", req.UserID, "xp_gained", result.XPGained, "new_level", result.NewLevel)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetProgress returns a user's stats and level progress
// @Summary Get user progress
// @Tags progress
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.UserProgress
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/progress [get]
func (h *ProgressHandler) HandleGetProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, ParamUserID)
		if !ok {
			return
		}

		result, err := h.service.GetUserProgress(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get progress", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetAchievements returns the achievement catalog with unlock flags
// @Summary Get achievements
// @Tags progress
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} AchievementsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/progress/achievements [get]
func (h *ProgressHandler) HandleGetAchievements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, ParamUserID)
		if !ok {
			return
		}

		achievements, err := h.service.GetAchievements(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get achievements", err)
			return
		}
		respondJSON(w, http.StatusOK, AchievementsResponse{UserID: userID, Achievements: achievements})
	}
}

// HandleGetActivity returns the user's recent activity log
// @Summary Get activity log
// @Tags progress
// @Produce json
// @Param user_id query string true "User id"
// @Param limit query int false "Maximum entries (default 20, max 100)"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/progress/activity [get]
func (h *ProgressHandler) HandleGetActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, ParamUserID)
		if !ok {
			return
		}
		limit, ok := GetOptionalIntQueryParam(r, w, ParamLimit, progress.DefaultActivityLimit)
		if !ok {
			return
		}

		entries, err := h.service.GetActivityLog(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, "Get activity", err)
			return
		}
		if entries == nil {
			entries = []domain.ActivityLogEntry{}
		}
		respondJSON(w, http.StatusOK, ActivityResponse{UserID: userID, Entries: entries})
	}
}
