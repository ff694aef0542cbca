package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

type dentistsCache struct {
	mu    sync.RWMutex
	cache *lru.Cache[int, domain.Dentist]
}

// Кэширование врачей

func (c *CacheAdapter) GetDentist(ctx context.Context, dentistID int) (*domain.Dentist, bool) {
	c.dentistsCache.mu.RLock()
	defer c.dentistsCache.mu.RUnlock()

	dentist, exists := c.dentistsCache.cache.Get(dentistID)
	if !exists {
		c.logger.Debug("cache.dentists.get.miss", out.LogFields{
			"dentistId": dentistID,
		})
		return nil, false
	}

	return &dentist, true
}

func (c *CacheAdapter) StoreDentists(ctx context.Context, dentists []domain.Dentist) {
	c.dentistsCache.mu.Lock()
	defer c.dentistsCache.mu.Unlock()

	c.logger.Debug("cache.dentists.store", out.LogFields{
		"dentistsCount": len(dentists),
	})

	for _, dentist := range dentists {
		c.dentistsCache.cache.Add(dentist.ID, dentist)
	}
}

func (c *CacheAdapter) InvalidateDentistCache(ctx context.Context, dentistID int) {
	c.dentistsCache.mu.Lock()
	defer c.dentistsCache.mu.Unlock()

	c.dentistsCache.cache.Remove(dentistID)
}

func (c *CacheAdapter) InvalidateAllDentistsCache(ctx context.Context) {
	c.dentistsCache.mu.Lock()
	defer c.dentistsCache.mu.Unlock()

	c.dentistsCache.cache.Purge()
}
