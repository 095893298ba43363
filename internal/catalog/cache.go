package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/logger"
	"github.com/osse101/TaskQuest_Go/internal/repository"
)

type cachedCatalog struct {
	Version      string
	Achievements []domain.Achievement
	CachedAt     time.Time
}

// CachedSource serves the achievement catalog from memory, reloading it from
// the underlying reader after the TTL expires or after Invalidate.
type CachedSource struct {
	src repository.CatalogReader
	lru *expirable.LRU[string, *cachedCatalog]
}

// NewCachedSource wraps src with an expiring cache. A non-positive ttl uses DefaultCacheTTL.
func NewCachedSource(src repository.CatalogReader, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{
		src: src,
		lru: expirable.NewLRU[string, *cachedCatalog](catalogCacheSize, nil, ttl),
	}
}

// GetAchievementCatalog returns a copy of the cached catalog, loading it on a miss.
// Errors are not cached.
func (c *CachedSource) GetAchievementCatalog(ctx context.Context) ([]domain.Achievement, error) {
	if entry, ok := c.lru.Get(catalogCacheKey); ok {
		if entry.Version == CacheSchemaVersion {
			return cloneCatalog(entry.Achievements), nil
		}
		c.lru.Remove(catalogCacheKey)
	}

	logger.FromContext(ctx).Debug(LogMsgCatalogCacheMiss)
	achievements, err := c.src.GetAchievementCatalog(ctx)
	if err != nil {
		return nil, err
	}

	c.lru.Add(catalogCacheKey, &cachedCatalog{
		Version:      CacheSchemaVersion,
		Achievements: cloneCatalog(achievements),
		CachedAt:     time.Now(),
	})
	return achievements, nil
}

// Invalidate drops the cached catalog, e.g. after a reseed
func (c *CachedSource) Invalidate() {
	c.lru.Purge()
}

func cloneCatalog(src []domain.Achievement) []domain.Achievement {
	if src == nil {
		return nil
	}
	out := make([]domain.Achievement, len(src))
	copy(out, src)
	return out
}
