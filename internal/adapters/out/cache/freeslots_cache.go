package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Stefan-Trajkovski/Saloon/internal/config"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/ports/out"
)

const (
	dateKeyFormat = "2006-01-02"

	// Entries go stale on external calendar edits the engine never sees,
	// so cached availability is only trusted for a bounded window.
	freeSlotsTTL = 30 * time.Minute
)

type freeSlotsEntry struct {
	Slots    []domain.TimeSlot
	StoredAt time.Time
}

// CacheAdapter keeps per-date free-slot computations in an LRU so repeated
// storefront availability polls do not hit the calendar provider. Bookings
// invalidate the date they landed on; entries for other dates age out of
// the LRU naturally.
type CacheAdapter struct {
	cache  *lru.Cache[string, *freeSlotsEntry]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruCache, err := lru.New[string, *freeSlotsEntry](cfg.Cache.Size)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	return &CacheAdapter{
		cache:  lruCache,
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetFreeSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := date.Format(dateKeyFormat)
	entry, exists := c.cache.Get(key)
	if !exists {
		c.logger.Debug("cache.get.miss", out.LogFields{
			"date": key,
		})
		return nil, false
	}

	if time.Since(entry.StoredAt) > freeSlotsTTL {
		c.logger.Debug("cache.get.expired", out.LogFields{
			"date":     key,
			"storedAt": entry.StoredAt,
		})
		return nil, false
	}

	c.logger.Debug("cache.get.hit", out.LogFields{
		"date":       key,
		"slotsCount": len(entry.Slots),
	})
	return entry.Slots, true
}

func (c *CacheAdapter) StoreFreeSlots(ctx context.Context, date time.Time, slots []domain.TimeSlot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := date.Format(dateKeyFormat)
	c.logger.Debug("cache.store", out.LogFields{
		"date":       key,
		"slotsCount": len(slots),
	})

	c.cache.Add(key, &freeSlotsEntry{
		Slots:    slots,
		StoredAt: time.Now(),
	})
}

func (c *CacheAdapter) InvalidateDate(ctx context.Context, date time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := date.Format(dateKeyFormat)
	c.logger.Debug("cache.invalidate", out.LogFields{
		"date": key,
	})

	c.cache.Remove(key)
}
