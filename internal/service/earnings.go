package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"

	"github.com/google/uuid"
)

// Доли от total_amount заказа, остаток остается платформе и не сохраняется.
const (
	SellerSharePercent   = 85
	DeliverySharePercent = 10
)

// Split считает начисления продавцу и курьеру за доставленный заказ.
func Split(order entities.Order, at time.Time) (seller, delivery entities.Earning) {
	seller = entities.Earning{
		ID:        uuid.NewString(),
		UserID:    order.SellerID,
		Role:      entities.RoleSeller,
		OrderID:   order.ID,
		Amount:    order.TotalAmount.Percent(SellerSharePercent),
		Status:    entities.EarningPending,
		CreatedAt: at,
	}
	delivery = entities.Earning{
		ID:        uuid.NewString(),
		UserID:    order.DeliveryPartnerID,
		Role:      entities.RoleDelivery,
		OrderID:   order.ID,
		Amount:    order.TotalAmount.Percent(DeliverySharePercent),
		Status:    entities.EarningPending,
		CreatedAt: at,
	}
	return seller, delivery
}

type earningsService struct {
	logger *slog.Logger
	repo   EarningRepo
}

func NewEarningsService(logger *slog.Logger, repo EarningRepo) *earningsService {
	return &earningsService{
		logger: logger.With(slog.String("service", "earnings")),
		repo:   repo,
	}
}

func (s *earningsService) EarningsSummary(ctx context.Context, actor entities.Actor) (entities.EarningsSummary, error) {
	if err := actor.Require(entities.RoleSeller, entities.RoleDelivery); err != nil {
		return entities.EarningsSummary{}, err
	}

	var earnings []entities.Earning
	err := retryRead(ctx, func() (err error) {
		earnings, err = s.repo.ListEarnings(ctx, actor.ID)
		return err
	})
	if err != nil {
		return entities.EarningsSummary{}, fmt.Errorf("failed to list earnings: %w", err)
	}

	return entities.Summarize(earnings), nil
}
