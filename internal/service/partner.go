package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
)

type partnerService struct {
	logger *slog.Logger
	users  UserRepo
	orders OrderRepo
}

func NewPartnerService(logger *slog.Logger, users UserRepo, orders OrderRepo) *partnerService {
	return &partnerService{
		logger: logger.With(slog.String("service", "partner")),
		users:  users,
		orders: orders,
	}
}

// SetAvailability включает или выключает прием заказов курьером.
// Курьер с незавершенным заказом не может снова стать доступным.
func (s *partnerService) SetAvailability(ctx context.Context, actor entities.Actor, available bool) error {
	if err := actor.Require(entities.RoleDelivery); err != nil {
		return err
	}

	var partner entities.User
	err := retryRead(ctx, func() (err error) {
		partner, err = s.users.GetUser(ctx, actor.ID)
		return err
	})
	if err != nil {
		return err
	}
	if !partner.CanDeliver() {
		return fmt.Errorf("%w: partner is not approved", entities.ErrForbidden)
	}

	if available {
		active, err := s.orders.ListOrders(ctx, entities.OrderFilter{
			DeliveryPartnerID: actor.ID,
			Statuses:          entities.DeliveryActiveStatuses,
			Limit:             1,
		})
		if err != nil {
			return fmt.Errorf("failed to check active orders: %w", err)
		}
		if len(active) > 0 {
			return fmt.Errorf("%w: partner has an active order %s", entities.ErrPreconditionFailed, active[0].ID)
		}
	}

	if err := s.users.SetAvailability(ctx, actor.ID, available); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "availability changed", slog.String("partner_id", actor.ID), slog.Bool("available", available))
	return nil
}
