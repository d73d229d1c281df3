package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
)

const (
	customerOrdersLimit = 100
	sellerOrdersLimit   = 1000
	historyLimit        = 100
)

type ActiveDelivery struct {
	Order  entities.Order
	Seller entities.User
}

// GetOrder отслеживание заказа. Покупатель видит только свои заказы, продавец и
// курьер только назначенные им, администратор любые.
func (s *orderService) GetOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error) {
	if err := actor.Require(entities.RoleCustomer, entities.RoleSeller, entities.RoleDelivery, entities.RoleAdmin); err != nil {
		return entities.Order{}, err
	}

	order, ok := s.cache.Get(orderID)
	if !ok {
		gen := s.invalidations.Load()
		var err error
		if order, err = s.loadOrder(ctx, orderID); err != nil {
			return entities.Order{}, err
		}
		s.cache.Set(orderID, order)
		// переход во время чтения мог сбросить кэш раньше, чем мы записали старую версию
		if s.invalidations.Load() != gen {
			s.cache.Delete(orderID)
		}
	}

	if !visibleTo(order, actor) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func visibleTo(o entities.Order, actor entities.Actor) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleCustomer:
		return o.CustomerID == actor.ID
	case entities.RoleSeller:
		return o.SellerID == actor.ID
	case entities.RoleDelivery:
		return o.DeliveryPartnerID == actor.ID
	}
	return false
}

func (s *orderService) ListOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if err := actor.Require(entities.RoleCustomer); err != nil {
		return nil, err
	}
	return s.listOrders(ctx, entities.OrderFilter{CustomerID: actor.ID, Limit: customerOrdersLimit})
}

// SellerOrders заказы в работе у продавца: назначенные, принятые и готовые к выдаче.
func (s *orderService) SellerOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if err := actor.Require(entities.RoleSeller); err != nil {
		return nil, err
	}
	return s.listOrders(ctx, entities.OrderFilter{
		SellerID: actor.ID,
		Statuses: entities.SellerActiveStatuses,
		Limit:    sellerOrdersLimit,
	})
}

// ActiveDelivery текущий заказ курьера вместе с данными продавца для забора.
// Если активного заказа нет, возвращает nil.
func (s *orderService) ActiveDelivery(ctx context.Context, actor entities.Actor) (*ActiveDelivery, error) {
	if err := actor.Require(entities.RoleDelivery); err != nil {
		return nil, err
	}

	orders, err := s.listOrders(ctx, entities.OrderFilter{
		DeliveryPartnerID: actor.ID,
		Statuses:          entities.DeliveryActiveStatuses,
		Limit:             1,
	})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	active := &ActiveDelivery{Order: orders[0]}
	err = retryRead(ctx, func() (err error) {
		active.Seller, err = s.users.GetUser(ctx, active.Order.SellerID)
		return err
	})
	if err != nil && !errors.Is(err, entities.ErrNotFound) {
		return nil, fmt.Errorf("failed to load seller: %w", err)
	}
	return active, nil
}

func (s *orderService) DeliveryHistory(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if err := actor.Require(entities.RoleDelivery); err != nil {
		return nil, err
	}
	return s.listOrders(ctx, entities.OrderFilter{
		DeliveryPartnerID: actor.ID,
		Statuses:          []entities.Status{entities.StatusDelivered},
		Limit:             historyLimit,
		OrderByUpdated:    true,
	})
}

func (s *orderService) listOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	var orders []entities.Order
	err := retryRead(ctx, func() (err error) {
		orders, err = s.orders.ListOrders(ctx, f)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// WarmUpCache заполняет кэш последними незавершенными заказами, чтобы первые
// запросы отслеживания после рестарта не шли в базу.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.listOrders(ctx, entities.OrderFilter{
		Statuses: []entities.Status{
			entities.StatusCreated,
			entities.StatusAssigned,
			entities.StatusAccepted,
			entities.StatusReadyForPickup,
			entities.StatusOutForDelivery,
		},
		Limit:          count,
		OrderByUpdated: true,
	})
	if err != nil {
		return err
	}

	for _, o := range orders {
		s.cache.Set(o.ID, o)
	}
	s.logger.InfoContext(ctx, "cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
