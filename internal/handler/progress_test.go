package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TaskQuest_Go/internal/domain"
)

func newJSONRequest(method, target, callerID, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if callerID != "" {
		req.Header.Set(HeaderUserID, callerID)
	}
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Error
}

func TestHandleAwardXP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)

		result := &domain.ProgressResult{
			UserID:   "alice",
			XPGained: 20,
			NewXP:    20,
			NewLevel: 1,
			Streak:   domain.StreakSummary{Current: 1, Updated: true},
			Unlocked: []domain.UnlockedAchievement{{ID: "first_task", Name: "First Task", XPReward: 10}},
		}
		svc.On("UpdateProgress", mock.Anything, "alice", "alice", 10).Return(result, nil)

		w := httptest.NewRecorder()
		h.HandleAwardXP().ServeHTTP(w, newJSONRequest(http.MethodPost, "/api/v1/progress/award", "alice", `{"user_id":"alice","xp":10}`))

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.ProgressResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, int64(20), got.XPGained)
		require.Len(t, got.Unlocked, 1)
		assert.Equal(t, "first_task", got.Unlocked[0].ID)
		svc.AssertExpectations(t)
	})

	t.Run("Missing caller id", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)

		w := httptest.NewRecorder()
		h.HandleAwardXP().ServeHTTP(w, newJSONRequest(http.MethodPost, "/api/v1/progress/award", "", `{"user_id":"alice","xp":10}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, ErrMsgMissingCallerID, decodeError(t, w))
		svc.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Forbidden for another user", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)
		svc.On("UpdateProgress", mock.Anything, "mallory", "alice", 10).Return(nil, domain.ErrForbidden)

		w := httptest.NewRecorder()
		h.HandleAwardXP().ServeHTTP(w, newJSONRequest(http.MethodPost, "/api/v1/progress/award", "mallory", `{"user_id":"alice","xp":10}`))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, ErrMsgForbiddenError, decodeError(t, w))
	})

	t.Run("Malformed body", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)

		w := httptest.NewRecorder()
		h.HandleAwardXP().ServeHTTP(w, newJSONRequest(http.MethodPost, "/api/v1/progress/award", "alice", `{"user_id":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgInvalidRequest, decodeError(t, w))
	})

	t.Run("Unknown field rejected", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)

		w := httptest.NewRecorder()
		h.HandleAwardXP().ServeHTTP(w, newJSONRequest(http.MethodPost, "/api/v1/progress/award", "alice", `{"user_id":"alice","xp":10,"level":99}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Negative XP fails validation", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)

		w := httptest.NewRecorder()
		h.HandleAwardXP().ServeHTTP(w, newJSONRequest(http.MethodPost, "/api/v1/progress/award", "alice", `{"user_id":"alice","xp":-5}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Must be at least 0", resp.Fields["xp"])
		svc.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage failure is not leaked", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)
		svc.On("UpdateProgress", mock.Anything, "alice", "alice", 10).
			Return(nil, fmt.Errorf("failed to commit progress update: %w", assert.AnError))

		w := httptest.NewRecorder()
		h.HandleAwardXP().ServeHTTP(w, newJSONRequest(http.MethodPost, "/api/v1/progress/award", "alice", `{"user_id":"alice","xp":10}`))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, ErrMsgGenericServerError, decodeError(t, w))
	})
}

func TestHandleGetProgress(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)

		up := &domain.UserProgress{
			Stats:     domain.UserStats{UserID: "alice", XP: 150, Level: 2},
			LevelInfo: domain.LevelInfo{Level: 2, XP: 150, LevelStartXP: 100, NextLevelXP: 400, XPToNextLevel: 250, ProgressPercent: 16},
		}
		svc.On("GetUserProgress", mock.Anything, "alice").Return(up, nil)

		w := httptest.NewRecorder()
		h.HandleGetProgress().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/progress?user_id=alice", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.UserProgress
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, 2, got.LevelInfo.Level)
		assert.Equal(t, int64(250), got.LevelInfo.XPToNextLevel)
	})

	t.Run("Missing user id", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)

		w := httptest.NewRecorder()
		h.HandleGetProgress().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, fmt.Sprintf(ErrMsgMissingQueryParam, ParamUserID), decodeError(t, w))
	})
}

func TestHandleGetAchievements(t *testing.T) {
	svc := new(MockProgressService)
	h := NewProgressHandler(svc)

	unlockedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	list := []domain.AchievementWithStatus{
		{Achievement: domain.Achievement{ID: "first_task", Name: "First Task"}, Unlocked: true, UnlockedAt: &unlockedAt},
		{Achievement: domain.Achievement{ID: "ten_tasks", Name: "Ten Tasks"}},
	}
	svc.On("GetAchievements", mock.Anything, "alice").Return(list, nil)

	w := httptest.NewRecorder()
	h.HandleGetAchievements().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/progress/achievements?user_id=alice", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var got AchievementsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "alice", got.UserID)
	require.Len(t, got.Achievements, 2)
	assert.True(t, got.Achievements[0].Unlocked)
	assert.False(t, got.Achievements[1].Unlocked)
}

func TestHandleGetActivity(t *testing.T) {
	t.Run("Default limit and empty list", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)
		svc.On("GetActivityLog", mock.Anything, "alice", 20).Return(nil, nil)

		w := httptest.NewRecorder()
		h.HandleGetActivity().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/progress/activity?user_id=alice", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"entries":[]`)
		svc.AssertExpectations(t)
	})

	t.Run("Explicit limit", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)
		entries := []domain.ActivityLogEntry{{UserID: "alice", Kind: domain.ActivityLevelUp, Message: "Reached level 2"}}
		svc.On("GetActivityLog", mock.Anything, "alice", 5).Return(entries, nil)

		w := httptest.NewRecorder()
		h.HandleGetActivity().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/progress/activity?user_id=alice&limit=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got ActivityResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.Len(t, got.Entries, 1)
		assert.Equal(t, domain.ActivityLevelUp, got.Entries[0].Kind)
	})

	t.Run("Non-numeric limit", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewProgressHandler(svc)

		w := httptest.NewRecorder()
		h.HandleGetActivity().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/progress/activity?user_id=alice&limit=ten", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, fmt.Sprintf(ErrMsgInvalidQueryParam, ParamLimit), decodeError(t, w))
	})
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"invalid input keeps message", fmt.Errorf("%w: user id is required", domain.ErrInvalidInput), http.StatusBadRequest, "invalid input: user id is required"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, ErrMsgForbiddenError},
		{"wrapped user not found", fmt.Errorf("load: %w", domain.ErrUserNotFound), http.StatusNotFound, ErrMsgUserNotFoundError},
		{"task not found", fmt.Errorf("%w: 123", domain.ErrTaskNotFound), http.StatusNotFound, ErrMsgTaskNotFoundError},
		{"already completed", domain.ErrTaskAlreadyCompleted, http.StatusConflict, ErrMsgTaskAlreadyCompletedError},
		{"database", domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"very long validation message", fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Repeat("x", 300)), http.StatusBadRequest, ErrMsgInvalidRequestError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
