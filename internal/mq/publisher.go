package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EventType — тип события, он же routing key.
type EventType string

// Типы событий.
const (
	EventClientCreated      EventType = "client.created"
	EventProjectCreated     EventType = "project.created"
	EventEnvironmentCreated EventType = "environment.created"
	EventServerCreated      EventType = "server.created"
	EventServerAction       EventType = "server.action"
	EventMonitorCreated     EventType = "monitor.created"
	EventSettingCreated     EventType = "setting.created"
	EventSettingUpdated     EventType = "setting.updated"
	EventSecretCreated      EventType = "secret.created"
	EventSecretUpdated      EventType = "secret.updated"
)

// Message — сообщение для публикации.
type Message struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// ServerActionPayload — payload события server.action.
type ServerActionPayload struct {
	ServerID uuid.UUID `json:"serverId"`
	Action   string    `json:"action"`
	Status   string    `json:"status"`
}

// SecretPayload — payload событий секретов. Значение секрета не публикуется.
type SecretPayload struct {
	SecretID    uuid.UUID `json:"secretId"`
	Key         string    `json:"key"`
	Environment string    `json:"environment"`
}

// Publisher публикует события в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Publish публикует событие eventType с payload.
func (p *Publisher) Publish(ctx context.Context, eventType EventType, payload any) error {
	msg := NewMessage(eventType, payload)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	routingKey := RoutingKey(eventType)

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(ExchangeEvents), // exchange
			string(routingKey),     // routing key
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Type:         string(msg.Type),
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", ExchangeEvents, routingKey, err)
		}

		p.logger.Debug("published message",
			"exchange", ExchangeEvents,
			"routing_key", routingKey,
			"message_id", msg.ID,
		)
		return nil
	})
}

// NewMessage собирает сообщение с новым ID и текущим временем.
func NewMessage(eventType EventType, payload any) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}
