package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

type CacheDentistMessage struct {
	DentistID int `json:"dentist_id"`
}

func (l *CacheInvalidationListener) processDentistMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeDentist {
		return nil
	}

	var msgJson CacheDentistMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return fmt.Errorf("dentist message: %v: %w", err, errMalformedMessage)
	}
	if msgJson.DentistID == 0 {
		return fmt.Errorf("dentist message without dentist_id: %w", errMalformedMessage)
	}

	if cacheMessageRoutingKey.CacheHitType != CacheHitTypeInvalidate {
		return nil
	}

	// Рабочие часы врача могли поменяться, сбрасываются и его дни
	if err := l.useCase.InvalidateDentistCache(ctx, msgJson.DentistID); err != nil {
		return err
	}

	l.logger.Info("dentist.message.invalidated", out.LogFields{
		"dentistId": msgJson.DentistID,
	})

	return nil
}
