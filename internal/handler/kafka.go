package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

const (
	ActionRematch    = "rematch"
	ActionReallocate = "reallocate"
)

// ReconcileRequest запрос внешнего джоба на повторный подбор для застрявшего заказа
type ReconcileRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	Action  string `json:"action" validate:"required,oneof=rematch reallocate"`
}

// ReconcileRequestFor какое действие нужно заказу, false если заказ не застрял.
func ReconcileRequestFor(o entities.Order) (ReconcileRequest, bool) {
	switch {
	case o.AwaitingSeller():
		return ReconcileRequest{OrderID: o.ID, Action: ActionRematch}, true
	case o.AwaitingPartner():
		return ReconcileRequest{OrderID: o.ID, Action: ActionReallocate}, true
	default:
		return ReconcileRequest{}, false
	}
}

// Запросы из топика выполняются от имени системного администратора.
var reconcilerActor = entities.Actor{ID: "reconciler", Role: entities.RoleAdmin}

type Reconciler interface {
	RematchOrder(ctx context.Context, actor entities.Actor, orderID string) (service.ReconcileResult, error)
	ReallocatePartner(ctx context.Context, actor entities.Actor, orderID string) (service.ReconcileResult, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq        messageWriter
	reader     messageReader
	logger     *slog.Logger
	validate   *validator.Validate
	reconciler Reconciler
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, reconciler Reconciler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.ReconcileTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:   newValidator(),
		reconciler: reconciler,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	reconcileInProgress.Inc()
	defer reconcileInProgress.Dec()

	start := time.Now()
	defer func() { reconcileDuration.Observe(time.Since(start).Seconds()) }()

	err := h.handleReconcile(ctx, m)
	switch {
	case err == nil:
		reconcileProcessed.Inc()

	// заказ уже ушел дальше по статусам или его нет, повторять нечего
	case errors.Is(err, entities.ErrPreconditionFailed), errors.Is(err, entities.ErrNotFound):
		reconcileSkipped.Inc()
		h.logger.Info("reconcile request skipped", slog.Any("error", err), slog.String("key", string(m.Key)))

	default:
		reconcileFailed.Inc()
		h.logger.Error("failed to handle message", slog.Any("error", err), slog.String("key", string(m.Key)))

		// В библиотеке уже есть retry
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		reconcileDLQ.Inc()
	}
}

func (h *kafkaHandler) handleReconcile(ctx context.Context, m kafka.Message) error {
	var req ReconcileRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal reconcile request: %w", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid reconcile request: %w", err)
	}

	var (
		res service.ReconcileResult
		err error
	)
	switch req.Action {
	case ActionRematch:
		res, err = h.reconciler.RematchOrder(ctx, reconcilerActor, req.OrderID)
	case ActionReallocate:
		res, err = h.reconciler.ReallocatePartner(ctx, reconcilerActor, req.OrderID)
	}
	if err != nil {
		return err
	}

	if res.Warning != "" {
		h.logger.Warn("order still degraded", slog.String("order_id", res.OrderID), slog.String("warning", res.Warning))
	}
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
