package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/SergeyBogomolovv/green-basket/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const Producer = "fulfillment-engine"

// Envelope формат сообщения в топике событий.
type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	OrderID    string          `json:"order_id,omitempty"`
	ActorID    string          `json:"actor_id"`
	ActorRole  string          `json:"actor_role"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type publisher struct {
	logger *slog.Logger
	writer MessageWriter
}

func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.BatchTimeout,
	}
}

func NewPublisher(logger *slog.Logger, writer MessageWriter) *publisher {
	return &publisher{
		logger: logger.With(slog.String("service", "events")),
		writer: writer,
	}
}

func NewEnvelope(e entities.Event) (Envelope, error) {
	env := Envelope{
		EventID:    uuid.NewString(),
		EventType:  string(e.Type),
		OccurredAt: e.OccurredAt.UTC(),
		Producer:   Producer,
		OrderID:    e.OrderID,
		ActorID:    e.Actor.ID,
		ActorRole:  string(e.Actor.Role),
	}
	if len(e.Details) > 0 {
		payload, err := json.Marshal(e.Details)
		if err != nil {
			return Envelope{}, fmt.Errorf("failed to marshal payload: %w", err)
		}
		env.Payload = payload
	}
	return env, nil
}

// Publish пишет событие с ключом по заказу, чтобы события одного заказа попадали в одну партицию.
// События остатков заказа не имеют и ключуются по продавцу.
func (p *publisher) Publish(ctx context.Context, e entities.Event) error {
	env, err := NewEnvelope(e)
	if err != nil {
		return err
	}

	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	key := e.OrderID
	if key == "" {
		key = e.Actor.ID
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(env.EventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.DebugContext(ctx, "event published", slog.String("event", env.EventType), slog.String("event_id", env.EventID))
	return nil
}

func (p *publisher) Close() error {
	return p.writer.Close()
}
