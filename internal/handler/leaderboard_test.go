package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TaskQuest_Go/internal/domain"
)

func TestHandleGetLeaderboard(t *testing.T) {
	t.Run("Default limit", func(t *testing.T) {
		board := new(MockLeaderboard)
		entries := []domain.LeaderboardEntry{
			{Rank: 1, UserID: "alice", XP: 300, Level: 2},
			{Rank: 1, UserID: "carol", XP: 300, Level: 2},
			{Rank: 3, UserID: "bob", XP: 100, Level: 2},
		}
		board.On("Top", mock.Anything, 10).Return(entries, nil)

		w := httptest.NewRecorder()
		NewLeaderboardHandler(board).HandleGetLeaderboard().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got LeaderboardResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.Len(t, got.Entries, 3)
		assert.Equal(t, 3, got.Entries[2].Rank)
	})

	t.Run("Limit is clamped", func(t *testing.T) {
		board := new(MockLeaderboard)
		board.On("Top", mock.Anything, 100).Return(nil, nil)

		w := httptest.NewRecorder()
		NewLeaderboardHandler(board).HandleGetLeaderboard().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=5000", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"entries":[]`)
		board.AssertExpectations(t)
	})

	t.Run("Backend failure", func(t *testing.T) {
		board := new(MockLeaderboard)
		board.On("Top", mock.Anything, 10).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		NewLeaderboardHandler(board).HandleGetLeaderboard().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
