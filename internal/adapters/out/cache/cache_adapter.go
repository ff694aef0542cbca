package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

// CacheAdapter кэш данных внешнего API. Держится актуальным событиями из RabbitMQ.
type CacheAdapter struct {
	dentistsCache     *dentistsCache
	appointmentsCache *appointmentsCache
	statusesCache     *statusesCache
	logger            out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruDentistsCache, err := lru.New[int, domain.Dentist](cfg.Cache.DentistsSize)
	if err != nil {
		logger.Error("cache.dentists.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.DentistsSize,
		})
		return nil, err
	}

	if cfg.Cache.AppointmentsSize <= 0 {
		logger.Error("cache.appointments.init.failed", out.LogFields{
			"size": cfg.Cache.AppointmentsSize,
		})
		return nil, errInvalidSize
	}

	return &CacheAdapter{
		dentistsCache: &dentistsCache{
			cache: lruDentistsCache,
		},
		appointmentsCache: &appointmentsCache{
			cache: expirable.NewLRU[string, []domain.Appointment](cfg.Cache.AppointmentsSize, nil, cfg.Cache.AppointmentsTTL),
		},
		statusesCache: &statusesCache{
			ttl: cfg.Cache.StatusesTTL,
		},
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}
