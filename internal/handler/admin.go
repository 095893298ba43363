package handler

import (
	"net/http"

	"github.com/osse101/TaskQuest_Go/internal/catalog"
	"github.com/osse101/TaskQuest_Go/internal/logger"
	"github.com/osse101/TaskQuest_Go/internal/progress"
)

// CatalogInvalidator drops cached catalog reads after a reseed
type CatalogInvalidator interface {
	Invalidate()
}

// AdminHandler handles operator endpoints
type AdminHandler struct {
	progress    progress.Service
	seeder      catalog.Seeder
	cache       CatalogInvalidator
	catalogPath string
}

// NewAdminHandler creates a new AdminHandler. cache may be nil; an empty catalogPath
// reloads the embedded default catalog.
func NewAdminHandler(progressSvc progress.Service, seeder catalog.Seeder, cache CatalogInvalidator, catalogPath string) *AdminHandler {
	return &AdminHandler{
		progress:    progressSvc,
		seeder:      seeder,
		cache:       cache,
		catalogPath: catalogPath,
	}
}

// GrantFreezesRequest is the request body for granting streak freezes
type GrantFreezesRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Count  int    `json:"count" validate:"min=1,max=10"`
}

// GrantFreezesResponse reports the user's freeze balance after a grant
type GrantFreezesResponse struct {
	UserID        string `json:"user_id"`
	StreakFreezes int    `json:"streak_freezes"`
}

// CatalogReloadResponse reports how many achievements were seeded
type CatalogReloadResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// HandleGrantStreakFreezes adds streak freeze tokens to a user
// @Summary Grant streak freezes
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GrantFreezesRequest true "Grant"
// @Success 200 {object} GrantFreezesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/streak-freezes [post]
func (h *AdminHandler) HandleGrantStreakFreezes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GrantFreezesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant streak freezes"); err != nil {
			return
		}

		stats, err := h.progress.GrantStreakFreezes(r.Context(), req.UserID, req.Count)
		if err != nil {
			respondServiceError(w, r, "Grant streak freezes", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgFreezesGranted, "user_id", req.UserID, "count", req.Count)
		respondJSON(w, http.StatusOK, GrantFreezesResponse{UserID: stats.UserID, StreakFreezes: stats.StreakFreezes})
	}
}

// HandleReloadCatalog re-reads the catalog seed file, upserts it and drops the catalog cache
// @Summary Reload achievement catalog
// @Tags admin
// @Produce json
// @Success 200 {object} CatalogReloadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/catalog/reload [post]
func (h *AdminHandler) HandleReloadCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		achievements, err := catalog.Load(h.catalogPath)
		if err != nil {
			respondServiceError(w, r, ErrMsgLoadCatalogFailed, err)
			return
		}
		if err := catalog.Seed(r.Context(), h.seeder, achievements); err != nil {
			respondServiceError(w, r, ErrMsgLoadCatalogFailed, err)
			return
		}
		if h.cache != nil {
			h.cache.Invalidate()
		}

		log.Info(LogMsgCatalogReloaded, "path", h.catalogPath, "count", len(achievements))
		respondJSON(w, http.StatusOK, CatalogReloadResponse{Message: MsgCatalogReloaded, Count: len(achievements)})
	}
}

