package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	mocks "github.com/SergeyBogomolovv/green-basket/internal/handler/mocks"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	written []kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func message(value string) kafka.Message {
	return kafka.Message{Topic: "fulfillment.reconcile", Key: []byte("ORD-1"), Value: []byte(value)}
}

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name         string
		value        string
		mockBehavior func(r *mocks.MockReconciler)
		wantDLQ      bool
	}{
		{
			name:  "rematch",
			value: `{"order_id":"ORD-1","action":"rematch"}`,
			mockBehavior: func(r *mocks.MockReconciler) {
				r.EXPECT().RematchOrder(mock.Anything, reconcilerActor, "ORD-1").
					Return(service.ReconcileResult{OrderID: "ORD-1", Status: entities.StatusAssigned, SellerID: "s1"}, nil).Once()
			},
		},
		{
			name:  "reallocate still degraded",
			value: `{"order_id":"ORD-1","action":"reallocate"}`,
			mockBehavior: func(r *mocks.MockReconciler) {
				r.EXPECT().ReallocatePartner(mock.Anything, reconcilerActor, "ORD-1").
					Return(service.ReconcileResult{OrderID: "ORD-1", Warning: service.WarningNoPartner}, nil).Once()
			},
		},
		{
			name:  "order moved on",
			value: `{"order_id":"ORD-1","action":"rematch"}`,
			mockBehavior: func(r *mocks.MockReconciler) {
				r.EXPECT().RematchOrder(mock.Anything, reconcilerActor, "ORD-1").
					Return(service.ReconcileResult{}, fmt.Errorf("%w: not awaiting a seller", entities.ErrPreconditionFailed)).Once()
			},
		},
		{
			name:  "order missing",
			value: `{"order_id":"ORD-1","action":"reallocate"}`,
			mockBehavior: func(r *mocks.MockReconciler) {
				r.EXPECT().ReallocatePartner(mock.Anything, reconcilerActor, "ORD-1").
					Return(service.ReconcileResult{}, entities.ErrOrderNotFound).Once()
			},
		},
		{
			name:         "broken json",
			value:        `{"order_id":`,
			mockBehavior: func(r *mocks.MockReconciler) {},
			wantDLQ:      true,
		},
		{
			name:         "unknown action",
			value:        `{"order_id":"ORD-1","action":"cancel"}`,
			mockBehavior: func(r *mocks.MockReconciler) {},
			wantDLQ:      true,
		},
		{
			name:  "infrastructure error",
			value: `{"order_id":"ORD-1","action":"rematch"}`,
			mockBehavior: func(r *mocks.MockReconciler) {
				r.EXPECT().RematchOrder(mock.Anything, reconcilerActor, "ORD-1").
					Return(service.ReconcileResult{}, errors.New("db down")).Once()
			},
			wantDLQ: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reconciler := mocks.NewMockReconciler(t)
			tc.mockBehavior(reconciler)

			reader := &fakeReader{messages: []kafka.Message{message(tc.value)}}
			dlq := &fakeWriter{}
			h := &kafkaHandler{
				dlq:        dlq,
				reader:     reader,
				logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate:   newValidator(),
				reconciler: reconciler,
			}

			h.Consume(context.Background())

			assert.Len(t, reader.committed, 1)
			if tc.wantDLQ {
				if assert.Len(t, dlq.written, 1) {
					assert.Equal(t, "fulfillment.reconcile-dlq", dlq.written[0].Topic)
				}
			} else {
				assert.Empty(t, dlq.written)
			}
		})
	}
}

func TestKafkaHandler_DLQFailureStillCommits(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{message(`not json`)}}
	h := &kafkaHandler{
		dlq:      &fakeWriter{err: errors.New("broker unavailable")},
		reader:   reader,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: newValidator(),
	}

	h.Consume(context.Background())

	assert.Len(t, reader.committed, 1)
}

func TestReconcileRequestFor(t *testing.T) {
	testCases := []struct {
		name   string
		order  entities.Order
		want   ReconcileRequest
		wantOK bool
	}{
		{
			name:   "created without seller",
			order:  entities.Order{ID: "ORD-1", Status: entities.StatusCreated},
			want:   ReconcileRequest{OrderID: "ORD-1", Action: ActionRematch},
			wantOK: true,
		},
		{
			name:   "ready without partner",
			order:  entities.Order{ID: "ORD-2", Status: entities.StatusReadyForPickup, SellerID: "s1"},
			want:   ReconcileRequest{OrderID: "ORD-2", Action: ActionReallocate},
			wantOK: true,
		},
		{
			name:  "assigned",
			order: entities.Order{ID: "ORD-3", Status: entities.StatusAssigned, SellerID: "s1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ReconcileRequestFor(tc.order)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
