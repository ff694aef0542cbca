package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

func (l *CacheInvalidationListener) processAllMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeAll {
		return nil
	}

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeInvalidate {
		if err := l.useCase.InvalidateAllCache(ctx); err != nil {
			return err
		}

		l.logger.Info("_all_.message.invalidated", out.LogFields{
			"dentists_cache":     true,
			"appointments_cache": true,
			"statuses_cache":     true,
		})
	}

	return nil
}
