package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
)

const degradedLimit = 500

// ReconcileResult итог повторного подбора; Warning непустой, если подобрать снова не удалось.
type ReconcileResult struct {
	OrderID   string
	Status    entities.Status
	SellerID  string
	PartnerID string
	Warning   string
}

// DegradedOrders заказы без продавца в CREATED и без курьера в READY_FOR_PICKUP.
func (s *orderService) DegradedOrders(ctx context.Context, actor entities.Actor, limit int) ([]entities.Order, error) {
	if err := actor.Require(entities.RoleAdmin); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > degradedLimit {
		limit = degradedLimit
	}

	var orders []entities.Order
	err := retryRead(ctx, func() (err error) {
		orders, err = s.orders.ListDegraded(ctx, limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list degraded orders: %w", err)
	}
	return orders, nil
}

// RematchOrder повторно запускает подбор продавца для заказа в CREATED.
func (s *orderService) RematchOrder(ctx context.Context, actor entities.Actor, orderID string) (res ReconcileResult, err error) {
	defer func() { observeTransition("rematch", err) }()

	if err := actor.Require(entities.RoleAdmin); err != nil {
		return ReconcileResult{}, err
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if !order.AwaitingSeller() {
		return ReconcileResult{}, fmt.Errorf("%w: order %s is not awaiting a seller", entities.ErrPreconditionFailed, orderID)
	}

	res = ReconcileResult{OrderID: orderID, Status: order.Status}

	seller, err := s.matcher.Match(ctx, order.Items)
	if errors.Is(err, entities.ErrNoSellerAvailable) {
		res.Warning = WarningNoSeller
		return res, nil
	}
	if err != nil {
		return ReconcileResult{}, err
	}

	if err := s.orders.AssignSeller(ctx, orderID, seller.ID); err != nil {
		return ReconcileResult{}, err
	}

	res.Status = entities.StatusAssigned
	res.SellerID = seller.ID
	s.afterTransition(ctx, actor, orderID, entities.EventOrderRematched, map[string]any{"seller_id": seller.ID})
	return res, nil
}

// ReallocatePartner повторно ищет курьера для готового заказа без курьера.
func (s *orderService) ReallocatePartner(ctx context.Context, actor entities.Actor, orderID string) (res ReconcileResult, err error) {
	defer func() { observeTransition("reallocate", err) }()

	if err := actor.Require(entities.RoleAdmin); err != nil {
		return ReconcileResult{}, err
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if !order.AwaitingPartner() {
		return ReconcileResult{}, fmt.Errorf("%w: order %s is not awaiting a partner", entities.ErrPreconditionFailed, orderID)
	}

	res = ReconcileResult{OrderID: orderID, Status: order.Status, SellerID: order.SellerID}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		partner, err := s.allocator.Allocate(ctx, orderID)
		if err != nil {
			return err
		}
		res.PartnerID = partner.ID
		return nil
	})
	if errors.Is(err, entities.ErrNoPartnerAvailable) {
		res.Warning = WarningNoPartner
		return res, nil
	}
	if err != nil {
		return ReconcileResult{}, err
	}

	s.logger.InfoContext(ctx, "partner reallocated", slog.String("order_id", orderID), slog.String("partner_id", res.PartnerID))
	s.afterTransition(ctx, actor, orderID, entities.EventPartnerAssigned, map[string]any{"partner_id": res.PartnerID})
	return res, nil
}
