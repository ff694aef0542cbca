package cache

import (
	"context"
	"sync"
	"time"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

type statusesCache struct {
	mu        sync.RWMutex
	cache     []domain.AppointmentStatus
	timestamp time.Time
	ttl       time.Duration
}

// Кэширование справочника статусов

func (c *CacheAdapter) GetStatuses(ctx context.Context) ([]domain.AppointmentStatus, bool) {
	c.statusesCache.mu.RLock()
	defer c.statusesCache.mu.RUnlock()

	if c.statusesCache.cache == nil || time.Since(c.statusesCache.timestamp) > c.statusesCache.ttl {
		return nil, false
	}

	return append([]domain.AppointmentStatus(nil), c.statusesCache.cache...), true
}

func (c *CacheAdapter) StoreStatuses(ctx context.Context, statuses []domain.AppointmentStatus) {
	c.statusesCache.mu.Lock()
	defer c.statusesCache.mu.Unlock()

	c.statusesCache.cache = append([]domain.AppointmentStatus{}, statuses...)
	c.statusesCache.timestamp = time.Now()
}

func (c *CacheAdapter) InvalidateStatusesCache(ctx context.Context) {
	c.statusesCache.mu.Lock()
	defer c.statusesCache.mu.Unlock()

	c.statusesCache.cache = nil
	c.statusesCache.timestamp = time.Time{}
}
