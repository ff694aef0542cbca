package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/json_types"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

var errInvalidSize = errors.New("must provide a positive size")

type appointmentsCache struct {
	mu    sync.RWMutex
	cache *expirable.LRU[string, []domain.Appointment]
}

// Ключ записи дня: "<dentistID>:<YYYY-MM-DD>"
func dayKey(dentistID int, date json_types.Date) string {
	return fmt.Sprintf("%d:%s", dentistID, date.String())
}

func dentistKeyPrefix(dentistID int) string {
	return fmt.Sprintf("%d:", dentistID)
}

// Кэширование записей врача на день

func (c *CacheAdapter) GetDayAppointments(ctx context.Context, dentistID int, date json_types.Date) ([]domain.Appointment, bool) {
	c.appointmentsCache.mu.RLock()
	defer c.appointmentsCache.mu.RUnlock()

	appointments, exists := c.appointmentsCache.cache.Get(dayKey(dentistID, date))
	if !exists {
		c.logger.Debug("cache.appointments.get.miss", out.LogFields{
			"key": dayKey(dentistID, date),
		})
		return nil, false
	}

	return append([]domain.Appointment(nil), appointments...), true
}

func (c *CacheAdapter) StoreDayAppointments(ctx context.Context, dentistID int, date json_types.Date, appointments []domain.Appointment) {
	c.appointmentsCache.mu.Lock()
	defer c.appointmentsCache.mu.Unlock()

	c.logger.Debug("cache.appointments.store", out.LogFields{
		"key":               dayKey(dentistID, date),
		"appointmentsCount": len(appointments),
	})

	// Пустой день тоже кэшируется, иначе свободные дни всегда уходят во внешний API
	stored := make([]domain.Appointment, len(appointments))
	copy(stored, appointments)
	c.appointmentsCache.cache.Add(dayKey(dentistID, date), stored)
}

func (c *CacheAdapter) InvalidateDayAppointmentsCache(ctx context.Context, dentistID int, date json_types.Date) {
	c.appointmentsCache.mu.Lock()
	defer c.appointmentsCache.mu.Unlock()

	c.appointmentsCache.cache.Remove(dayKey(dentistID, date))
}

func (c *CacheAdapter) InvalidateDentistAppointmentsCache(ctx context.Context, dentistID int) {
	c.appointmentsCache.mu.Lock()
	defer c.appointmentsCache.mu.Unlock()

	prefix := dentistKeyPrefix(dentistID)
	for _, key := range c.appointmentsCache.cache.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.appointmentsCache.cache.Remove(key)
		}
	}
}

func (c *CacheAdapter) InvalidateAllAppointmentsCache(ctx context.Context) {
	c.appointmentsCache.mu.Lock()
	defer c.appointmentsCache.mu.Unlock()

	c.appointmentsCache.cache.Purge()
}
