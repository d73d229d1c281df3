package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
)

// emit публикует событие после коммита. Ошибка публикации только логируется.
func emit(ctx context.Context, logger *slog.Logger, pub EventPublisher, e entities.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, e); err != nil {
		logger.WarnContext(ctx, "failed to publish event",
			slog.String("event", string(e.Type)),
			slog.String("order_id", e.OrderID),
			slog.Any("error", err),
		)
	}
}

func transitionResult(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, entities.ErrPreconditionFailed),
		errors.Is(err, entities.ErrNotFound),
		errors.Is(err, entities.ErrForbidden):
		return resultRejected
	default:
		return resultError
	}
}
