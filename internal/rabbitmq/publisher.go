// Package rabbitmq broadcasts incident events on a fanout exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"drp/internal/config"
	"drp/internal/domain"
)

const DefaultExchange = "drp.incidents"

func Dial(cfg config.RabbitMQConfig) (*amqp.Connection, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connect: %w", err)
	}
	return conn, nil
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type IncidentPublisher struct {
	ch       channel
	exchange string
	logger   *slog.Logger
}

// NewIncidentPublisher opens a channel and declares the durable fanout
// exchange. Consumers bind their own queues.
func NewIncidentPublisher(conn *amqp.Connection, exchange string, logger *slog.Logger) (*IncidentPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &IncidentPublisher{ch: ch, exchange: exchange, logger: logger}, nil
}

func (p *IncidentPublisher) PublishIncident(ctx context.Context, event domain.IncidentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal incident event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Incident.ID.String(),
		Type:         string(event.Action),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish incident event: %w", err)
	}

	p.logger.Debug("incident event published",
		slog.String("exchange", p.exchange),
		slog.String("incident_id", event.Incident.ID.String()),
	)
	return nil
}

func (p *IncidentPublisher) Close() error {
	return p.ch.Close()
}
