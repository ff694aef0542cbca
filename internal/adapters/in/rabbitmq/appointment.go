package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

// CacheAppointmentMessage запись после изменения, Previous приходит при переносе
type CacheAppointmentMessage struct {
	Appointment domain.Appointment  `json:"appointment"`
	Previous    *domain.Appointment `json:"previous,omitempty"`
}

func (l *CacheInvalidationListener) processAppointmentMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeAppointment {
		return nil
	}

	var msgJson CacheAppointmentMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return fmt.Errorf("appointment message: %v: %w", err, errMalformedMessage)
	}
	if msgJson.Appointment.DentistID == 0 || msgJson.Appointment.Date.IsZero() {
		return fmt.Errorf("appointment message without dentist or date: %w", errMalformedMessage)
	}

	l.logger.Debug("appointment.message.received", out.LogFields{
		"msgString": string(msg.Body),
	})

	if cacheMessageRoutingKey.CacheHitType != CacheHitTypeInvalidate {
		return nil
	}

	days := []domain.Appointment{msgJson.Appointment}
	if msgJson.Previous != nil && msgJson.Previous.DentistID != 0 && !msgJson.Previous.Date.IsZero() {
		days = append(days, *msgJson.Previous)
	}
	for _, appointment := range days {
		if err := l.useCase.InvalidateDayAppointmentsCache(ctx, appointment.DentistID, appointment.Date); err != nil {
			return err
		}
	}

	l.logger.Info("appointment.message.invalidated", out.LogFields{
		"appointmentId": msgJson.Appointment.ID,
		"days":          len(days),
	})

	return nil
}
