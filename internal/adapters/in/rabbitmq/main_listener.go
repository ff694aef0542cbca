package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

// CacheInvalidationListener слушает события об изменениях во внешнем API и сбрасывает кэш
type CacheInvalidationListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.CacheInvalidationUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type (
	CacheHitType         string
	CacheHitResourceType string
)

type CacheMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType CacheHitResourceType
	Version      string
	CacheHitType CacheHitType
}

const (
	CacheHitResourceTypeAll         CacheHitResourceType = "_all_"
	CacheHitResourceTypeAppointment CacheHitResourceType = "appointment"
	CacheHitResourceTypeDentist     CacheHitResourceType = "dentist"
)

const (
	CacheHitTypeInvalidate CacheHitType = "invalidate"
)

// errMalformedMessage сообщение, которое не получится обработать и при повторной доставке
var errMalformedMessage = errors.New("malformed cache message")

type messageProcessor func(ctx context.Context, msg amqp.Delivery) error

func NewCacheInvalidationListener(useCase in.CacheInvalidationUseCase, cfg *config.Config, logger out.LoggerPort) (*CacheInvalidationListener, error) {
	logger = logger.WithModule("CacheInvalidationListener")
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("rabbitmq.connect.failed: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("rabbitmq.channel.failed: %w", err)
	}

	return &CacheInvalidationListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *CacheInvalidationListener) Start(ctx context.Context) error {
	queues := l.cfg.RabbitMQ.QueueConfig
	consumers := []struct {
		name    string
		bind    string
		process messageProcessor
	}{
		{queues.AppointmentQueueName, queues.AppointmentQueueBind, l.processAppointmentMessage},
		{queues.DentistQueueName, queues.DentistQueueBind, l.processDentistMessage},
		{queues.AllQueueName, queues.AllQueueBind, l.processAllMessage},
	}

	for _, consumer := range consumers {
		if err := l.startQueue(ctx, consumer.name, consumer.bind, consumer.process); err != nil {
			return fmt.Errorf("rabbitmq.queue.start_failed: %s: %w", consumer.name, err)
		}
		l.logger.Info("rabbitmq.queue.started", out.LogFields{
			"queue": consumer.name,
			"bind":  consumer.bind,
		})
	}

	return nil
}

func (l *CacheInvalidationListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

func (l *CacheInvalidationListener) startQueue(ctx context.Context, name, bind string, process messageProcessor) error {
	queue, err := l.channel.QueueDeclare(
		name,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}
	err = l.channel.QueueBind(
		queue.Name,
		bind,
		l.cfg.RabbitMQ.QueueConfig.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					l.logger.Warn("rabbitmq.queue.closed", out.LogFields{
						"queue": queue.Name,
					})
					return
				}
				l.handle(ctx, amqpDelivery{msg}, process)
			}
		}
	}()

	return nil
}

func (l *CacheInvalidationListener) handle(ctx context.Context, msg acknowledger, process messageProcessor) {
	delivery := msg.delivery()
	err := process(ctx, delivery)
	if err == nil {
		msg.Ack(false)
		return
	}

	requeue := !errors.Is(err, errMalformedMessage)
	l.logger.Error("rabbitmq.message.failed", out.LogFields{
		"routingKey": delivery.RoutingKey,
		"requeue":    requeue,
		"error":      err.Error(),
	})
	msg.Nack(false, requeue)
}

// acknowledger часть amqp.Delivery, нужная для подтверждения сообщения
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
	delivery() amqp.Delivery
}

type amqpDelivery struct {
	amqp.Delivery
}

func (d amqpDelivery) delivery() amqp.Delivery {
	return d.Delivery
}

// Пример routingKey:
// dental-api.dental-slots.appointment.v1.invalidate
// dental-api.dental-slots.dentist.v1.invalidate
// dental-api.dental-slots._all_.v1.invalidate
func parseCacheMessageRoutingKey(msg amqp.Delivery) (CacheMessageRoutingKey, error) {
	routingKey := msg.RoutingKey
	parts := strings.Split(routingKey, ".")

	if len(parts) < 5 {
		return CacheMessageRoutingKey{}, fmt.Errorf("invalid routing key %q: %w", routingKey, errMalformedMessage)
	}

	return CacheMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: CacheHitResourceType(parts[2]),
		Version:      parts[3],
		CacheHitType: CacheHitType(parts[4]),
	}, nil
}
