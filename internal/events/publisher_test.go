package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/events"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := events.NewPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	at := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), entities.Event{
		Type:       entities.EventOrderDelivered,
		OrderID:    "ORD-1",
		Actor:      entities.Actor{ID: "d1", Role: entities.RoleDelivery},
		OccurredAt: at,
		Details:    map[string]any{"delivery_earning": entities.Amount(10000)},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	m := w.msgs[0]
	assert.Equal(t, "ORD-1", string(m.Key))

	var env events.Envelope
	require.NoError(t, json.Unmarshal(m.Value, &env))
	assert.Equal(t, "ORDER_DELIVERED", env.EventType)
	assert.Equal(t, events.Producer, env.Producer)
	assert.Equal(t, "d1", env.ActorID)
	assert.Equal(t, "DELIVERY", env.ActorRole)
	assert.True(t, at.Equal(env.OccurredAt))
	assert.NotEmpty(t, env.EventID)
	assert.JSONEq(t, `{"delivery_earning":100.00}`, string(env.Payload))
}

func TestPublisher_KeyFallsBackToActor(t *testing.T) {
	w := &fakeWriter{}
	p := events.NewPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	err := p.Publish(context.Background(), entities.Event{
		Type:  entities.EventStockConfirmed,
		Actor: entities.Actor{ID: "s1", Role: entities.RoleSeller},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "s1", string(w.msgs[0].Key))
}

func TestPublisher_WriteError(t *testing.T) {
	broken := errors.New("broker down")
	p := events.NewPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeWriter{err: broken})

	err := p.Publish(context.Background(), entities.Event{Type: entities.EventOrderCreated, OrderID: "ORD-1"})
	assert.ErrorIs(t, err, broken)
}
