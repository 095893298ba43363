package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TaskQuest_Go/internal/domain"
)

func TestHandleGrantStreakFreezes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockProgressService)
		svc.On("GrantStreakFreezes", mock.Anything, "alice", 2).Return(&domain.UserStats{UserID: "alice", StreakFreezes: 3}, nil)
		h := NewAdminHandler(svc, nil, nil, "")

		w := httptest.NewRecorder()
		h.HandleGrantStreakFreezes().ServeHTTP(w, newJSONRequest(http.MethodPost, "/api/v1/admin/streak-freezes", "", `{"user_id":"alice","count":2}`))

		assert.Equal(t, http.StatusOK, w.Code)
		var got GrantFreezesResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, GrantFreezesResponse{UserID: "alice", StreakFreezes: 3}, got)
	})

	t.Run("Count out of range", func(t *testing.T) {
		svc := new(MockProgressService)
		h := NewAdminHandler(svc, nil, nil, "")

		w := httptest.NewRecorder()
		h.HandleGrantStreakFreezes().ServeHTTP(w, newJSONRequest(http.MethodPost, "/api/v1/admin/streak-freezes", "", `{"user_id":"alice","count":50}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GrantStreakFreezes", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleReloadCatalog(t *testing.T) {
	t.Run("Embedded catalog", func(t *testing.T) {
		seeder := new(MockSeeder)
		seeder.On("UpsertAchievements", mock.Anything, mock.AnythingOfType("[]domain.Achievement")).Return(nil)
		cache := new(MockInvalidator)
		cache.On("Invalidate").Return()
		h := NewAdminHandler(new(MockProgressService), seeder, cache, "")

		w := httptest.NewRecorder()
		h.HandleReloadCatalog().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/catalog/reload", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got CatalogReloadResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, MsgCatalogReloaded, got.Message)
		assert.Positive(t, got.Count)
		seeder.AssertExpectations(t)
		cache.AssertNumberOfCalls(t, "Invalidate", 1)
	})

	t.Run("Invalid seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "achievements.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
version: 1
achievements:
  - id: odd
    name: Odd
    condition_type: phase_of_moon
    condition_value: 1
`), 0o600))

		seeder := new(MockSeeder)
		cache := new(MockInvalidator)
		h := NewAdminHandler(new(MockProgressService), seeder, cache, path)

		w := httptest.NewRecorder()
		h.HandleReloadCatalog().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/catalog/reload", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		seeder.AssertNotCalled(t, "UpsertAchievements", mock.Anything, mock.Anything)
		cache.AssertNotCalled(t, "Invalidate")
	})

	t.Run("Seed failure keeps cache", func(t *testing.T) {
		seeder := new(MockSeeder)
		seeder.On("UpsertAchievements", mock.Anything, mock.Anything).Return(assert.AnError)
		cache := new(MockInvalidator)
		h := NewAdminHandler(new(MockProgressService), seeder, cache, "")

		w := httptest.NewRecorder()
		h.HandleReloadCatalog().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/catalog/reload", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		cache.AssertNotCalled(t, "Invalidate")
	})
}
