package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/pkg/trm"
)

type StockItem struct {
	entities.Product
	Health entities.StockHealth
}

type StockView struct {
	Date           string
	ConfirmedToday bool
	Items          []StockItem
}

type stockService struct {
	logger    *slog.Logger
	txManager trm.Manager
	catalog   CatalogRepo
	users     UserRepo
	events    EventPublisher
	calendar  *Calendar
}

func NewStockService(
	logger *slog.Logger,
	txManager trm.Manager,
	catalog CatalogRepo,
	users UserRepo,
	events EventPublisher,
	calendar *Calendar,
) *stockService {
	return &stockService{
		logger:    logger.With(slog.String("service", "stock")),
		txManager: txManager,
		catalog:   catalog,
		users:     users,
		events:    events,
		calendar:  calendar,
	}
}

func (s *stockService) StockView(ctx context.Context, actor entities.Actor) (StockView, error) {
	if err := actor.Require(entities.RoleSeller); err != nil {
		return StockView{}, err
	}

	var (
		seller   entities.User
		products []entities.Product
	)
	err := retryRead(ctx, func() (err error) {
		if seller, err = s.users.GetUser(ctx, actor.ID); err != nil {
			return err
		}
		products, err = s.catalog.SellerProducts(ctx, actor.ID)
		return err
	})
	if err != nil {
		return StockView{}, fmt.Errorf("failed to load stock: %w", err)
	}

	today := s.calendar.Today()
	view := StockView{
		Date:           today,
		ConfirmedToday: seller.DailyStockDate == today,
		Items:          make([]StockItem, 0, len(products)),
	}
	for _, p := range products {
		view.Items = append(view.Items, StockItem{Product: p, Health: entities.HealthOf(p.Stock)})
	}
	return view, nil
}

// ConfirmDailyStock перезаписывает остатки и отмечает продавца как подтвердившего их сегодня.
// Без этой отметки продавец не участвует в подборе.
func (s *stockService) ConfirmDailyStock(ctx context.Context, actor entities.Actor, levels []entities.StockLevel) ([]entities.StockLevel, error) {
	if err := actor.Require(entities.RoleSeller); err != nil {
		return nil, err
	}
	if err := validateLevels(levels); err != nil {
		return nil, err
	}

	today := s.calendar.Today()

	var result []entities.StockLevel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		if result, err = s.catalog.SetStock(ctx, actor.ID, levels); err != nil {
			return err
		}
		return s.users.ConfirmDailyStock(ctx, actor.ID, today)
	})
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "daily stock confirmed", slog.String("seller_id", actor.ID), slog.Int("products", len(result)))
	emit(ctx, s.logger, s.events, entities.Event{
		Type:       entities.EventStockConfirmed,
		Actor:      actor,
		OccurredAt: s.calendar.Now(),
		Details:    map[string]any{"date": today, "products": len(result)},
	})
	return result, nil
}

// AdjustStock ручная корректировка на одну единицу, остаток не уходит ниже нуля.
func (s *stockService) AdjustStock(ctx context.Context, actor entities.Actor, productID string, delta int) (int, error) {
	if err := actor.Require(entities.RoleSeller); err != nil {
		return 0, err
	}
	if delta != 1 && delta != -1 {
		return 0, fmt.Errorf("%w: adjustment must be +1 or -1", entities.ErrInvalidInput)
	}

	var stock int
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		stock, err = s.catalog.AdjustStock(ctx, actor.ID, productID, delta)
		return err
	})
	if err != nil {
		return 0, err
	}

	emit(ctx, s.logger, s.events, entities.Event{
		Type:       entities.EventStockAdjusted,
		Actor:      actor,
		OccurredAt: s.calendar.Now(),
		Details:    map[string]any{"product_id": productID, "delta": delta, "new_stock": stock},
	})
	return stock, nil
}

func validateLevels(levels []entities.StockLevel) error {
	if len(levels) == 0 {
		return fmt.Errorf("%w: no stock levels", entities.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(levels))
	for _, l := range levels {
		if l.ProductID == "" || l.Stock < 0 {
			return fmt.Errorf("%w: bad stock level for %q", entities.ErrInvalidInput, l.ProductID)
		}
		if seen[l.ProductID] {
			return fmt.Errorf("%w: duplicate product %s", entities.ErrInvalidInput, l.ProductID)
		}
		seen[l.ProductID] = true
	}
	return nil
}

// decrementForOrder списывает позиции принятого заказа. Товар, удаленный из каталога, пропускается.
func decrementForOrder(ctx context.Context, logger *slog.Logger, catalog CatalogRepo, order entities.Order) error {
	for _, it := range order.Items {
		stock, err := catalog.DecrementStock(ctx, order.ID, order.SellerID, it.ProductID, it.Quantity)
		if errors.Is(err, entities.ErrProductNotFound) {
			logger.WarnContext(ctx, "product missing on accept",
				slog.String("order_id", order.ID), slog.String("product_id", it.ProductID))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
		logger.DebugContext(ctx, "stock decremented",
			slog.String("product_id", it.ProductID), slog.Int("stock", stock))
	}
	return nil
}
