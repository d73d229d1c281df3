package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/pkg/trm"

	"github.com/google/uuid"
)

const (
	WarningNoSeller  = "order created but no seller available currently"
	WarningNoPartner = "order is ready but no delivery partner available currently"

	orderIDAttempts = 3
)

type CheckoutLine struct {
	ProductID string
	Quantity  int
}

type CheckoutRequest struct {
	Items           []CheckoutLine
	DeliveryAddress entities.Address
}

type CheckoutResult struct {
	Order   entities.Order
	Warning string
}

type ReadyResult struct {
	PartnerID string
	Warning   string
}

type Deps struct {
	Logger    *slog.Logger
	TxManager trm.Manager

	Orders   OrderRepo
	Catalog  CatalogRepo
	Users    UserRepo
	Earnings EarningRepo

	Events EventPublisher
	OTP    OTPGate
	Cache  OrderCache

	Calendar *Calendar
	Pricing  Pricing
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager

	orders   OrderRepo
	catalog  CatalogRepo
	users    UserRepo
	earnings EarningRepo

	events EventPublisher
	otp    OTPGate
	cache  OrderCache

	calendar *Calendar
	pricing  Pricing

	matcher   *SellerMatcher
	allocator *PartnerAllocator

	// invalidations растет при каждом сбросе кэша после перехода
	invalidations atomic.Uint64
}

func NewOrderService(d Deps) *orderService {
	return &orderService{
		logger:    d.Logger.With(slog.String("service", "order")),
		txManager: d.TxManager,
		orders:    d.Orders,
		catalog:   d.Catalog,
		users:     d.Users,
		earnings:  d.Earnings,
		events:    d.Events,
		otp:       d.OTP,
		cache:     d.Cache,
		calendar:  d.Calendar,
		pricing:   d.Pricing,
		matcher:   NewSellerMatcher(d.Catalog, d.Users, d.Calendar),
		allocator: NewPartnerAllocator(d.TxManager, d.Users, d.Orders, d.OTP),
	}
}

// CreateOrder оформляет заказ. Заказ без подходящего продавца все равно создается
// в статусе CREATED, а причина возвращается в Warning.
func (s *orderService) CreateOrder(ctx context.Context, actor entities.Actor, req CheckoutRequest) (CheckoutResult, error) {
	if err := actor.Require(entities.RoleCustomer); err != nil {
		return CheckoutResult{}, err
	}

	lines, err := mergeLines(req.Items)
	if err != nil {
		return CheckoutResult{}, err
	}

	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	var found []entities.Product
	err = retryRead(ctx, func() (err error) {
		found, err = s.catalog.ProductsByIDs(ctx, ids)
		return err
	})
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to load products: %w", err)
	}
	products := indexProducts(found)

	items, err := priceLines(lines, products)
	if err != nil {
		return CheckoutResult{}, err
	}

	var subtotal entities.Amount
	for _, it := range items {
		subtotal += it.LineTotal
	}
	fee := s.pricing.DeliveryFee(subtotal)

	now := s.calendar.Now()
	order := entities.Order{
		CustomerID:      actor.ID,
		Status:          entities.StatusCreated,
		PaymentMethod:   entities.PaymentCOD,
		TotalAmount:     subtotal + fee,
		DeliveryFee:     fee,
		CreatedAt:       now,
		UpdatedAt:       now,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
	}

	var warning string
	seller, err := s.matcher.match(ctx, items, products)
	switch {
	case err == nil:
		order.SellerID = seller.ID
		order.Status = entities.StatusAssigned
	case errors.Is(err, entities.ErrNoSellerAvailable):
		warning = WarningNoSeller
	default:
		return CheckoutResult{}, err
	}

	if err := s.insertOrder(ctx, &order); err != nil {
		return CheckoutResult{}, err
	}

	ordersCreatedTotal.WithLabelValues(string(order.Status)).Inc()
	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("status", string(order.Status)),
		slog.String("seller_id", order.SellerID),
	)
	emit(ctx, s.logger, s.events, entities.Event{
		Type:       entities.EventOrderCreated,
		OrderID:    order.ID,
		Actor:      actor,
		OccurredAt: now,
		Details: map[string]any{
			"status":       order.Status,
			"seller_id":    order.SellerID,
			"items":        len(order.Items),
			"total_amount": order.TotalAmount,
		},
	})

	return CheckoutResult{Order: order, Warning: warning}, nil
}

// insertOrder сохраняет заказ, перегенерируя id при коллизии.
func (s *orderService) insertOrder(ctx context.Context, order *entities.Order) error {
	for attempt := 1; ; attempt++ {
		order.ID = newOrderID()
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.orders.CreateOrder(ctx, *order)
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, entities.ErrOrderExists) || attempt == orderIDAttempts {
			return fmt.Errorf("failed to save order: %w", err)
		}
		s.logger.DebugContext(ctx, "order id collision", slog.String("order_id", order.ID))
	}
}

func (s *orderService) AcceptOrder(ctx context.Context, actor entities.Actor, orderID string) (err error) {
	defer func() { observeTransition("accept", err) }()

	if err := actor.Require(entities.RoleSeller); err != nil {
		return err
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.SellerID != actor.ID {
		return entities.ErrOrderNotFound
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.orders.Transition(ctx, entities.Transition{
			OrderID:  orderID,
			From:     entities.StatusAssigned,
			To:       entities.StatusAccepted,
			SellerID: actor.ID,
		})
		if err != nil {
			return err
		}
		return decrementForOrder(ctx, s.logger, s.catalog, order)
	})
	if err != nil {
		return err
	}

	s.afterTransition(ctx, actor, orderID, entities.EventOrderAccepted, nil)
	return nil
}

// MarkReady переводит заказ в READY_FOR_PICKUP и в той же транзакции назначает курьера.
// Отсутствие свободного курьера не отменяет перевод.
func (s *orderService) MarkReady(ctx context.Context, actor entities.Actor, orderID string) (res ReadyResult, err error) {
	defer func() { observeTransition("ready", err) }()

	if err := actor.Require(entities.RoleSeller); err != nil {
		return ReadyResult{}, err
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return ReadyResult{}, err
	}
	if order.SellerID != actor.ID {
		return ReadyResult{}, entities.ErrOrderNotFound
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.orders.Transition(ctx, entities.Transition{
			OrderID:  orderID,
			From:     entities.StatusAccepted,
			To:       entities.StatusReadyForPickup,
			SellerID: actor.ID,
		})
		if err != nil {
			return err
		}

		partner, err := s.allocator.Allocate(ctx, orderID)
		if errors.Is(err, entities.ErrNoPartnerAvailable) {
			res.Warning = WarningNoPartner
			return nil
		}
		if err != nil {
			return err
		}
		res.PartnerID = partner.ID
		return nil
	})
	if err != nil {
		return ReadyResult{}, err
	}

	s.afterTransition(ctx, actor, orderID, entities.EventOrderReady, nil)
	if res.PartnerID != "" {
		emit(ctx, s.logger, s.events, entities.Event{
			Type:       entities.EventPartnerAssigned,
			OrderID:    orderID,
			Actor:      actor,
			OccurredAt: s.calendar.Now(),
			Details:    map[string]any{"partner_id": res.PartnerID},
		})
	} else {
		s.logger.WarnContext(ctx, "no delivery partner available", slog.String("order_id", orderID))
	}
	return res, nil
}

func (s *orderService) StartPickup(ctx context.Context, actor entities.Actor, orderID string) (err error) {
	defer func() { observeTransition("pickup", err) }()

	if err := actor.Require(entities.RoleDelivery); err != nil {
		return err
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.DeliveryPartnerID != actor.ID {
		return entities.ErrOrderNotFound
	}

	err = s.orders.Transition(ctx, entities.Transition{
		OrderID:   orderID,
		From:      entities.StatusReadyForPickup,
		To:        entities.StatusOutForDelivery,
		PartnerID: actor.ID,
	})
	if err != nil {
		return err
	}

	s.afterTransition(ctx, actor, orderID, entities.EventPickupStarted, nil)
	return nil
}

// ConfirmDelivery завершает заказ по OTP: перевод в DELIVERED, начисления и
// возврат доступности курьера выполняются одной транзакцией.
// Возвращает начисление курьера.
func (s *orderService) ConfirmDelivery(ctx context.Context, actor entities.Actor, orderID, otp string) (earning entities.Earning, err error) {
	defer func() { observeTransition("deliver", err) }()

	if err := actor.Require(entities.RoleDelivery); err != nil {
		return entities.Earning{}, err
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Earning{}, err
	}
	if order.DeliveryPartnerID != actor.ID {
		return entities.Earning{}, entities.ErrOrderNotFound
	}
	if order.Status != entities.StatusOutForDelivery {
		return entities.Earning{}, fmt.Errorf("%w: order %s is %s", entities.ErrPreconditionFailed, orderID, order.Status)
	}

	if err := s.otp.Verify(ctx, orderID, order.DeliveryOTP, otp); err != nil {
		if errors.Is(err, entities.ErrInvalidOTP) {
			otpFailuresTotal.Inc()
		}
		return entities.Earning{}, err
	}

	now := s.calendar.Now()
	sellerEarning, deliveryEarning := Split(order, now)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.orders.Transition(ctx, entities.Transition{
			OrderID:   orderID,
			From:      entities.StatusOutForDelivery,
			To:        entities.StatusDelivered,
			PartnerID: actor.ID,
		})
		if err != nil {
			return err
		}
		if err := s.earnings.SaveEarnings(ctx, []entities.Earning{sellerEarning, deliveryEarning}); err != nil {
			return err
		}
		return s.users.SetAvailability(ctx, actor.ID, true)
	})
	if err != nil {
		return entities.Earning{}, err
	}

	if err := s.otp.Clear(ctx, orderID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear otp attempts", slog.String("order_id", orderID), slog.Any("error", err))
	}

	s.afterTransition(ctx, actor, orderID, entities.EventOrderDelivered, map[string]any{
		"seller_earning":   sellerEarning.Amount,
		"delivery_earning": deliveryEarning.Amount,
	})
	return deliveryEarning, nil
}

func (s *orderService) afterTransition(ctx context.Context, actor entities.Actor, orderID string, typ entities.EventType, details map[string]any) {
	s.invalidations.Add(1)
	s.cache.Delete(orderID)
	s.logger.InfoContext(ctx, "order transition",
		slog.String("order_id", orderID),
		slog.String("event", string(typ)),
		slog.String("actor_id", actor.ID),
	)
	emit(ctx, s.logger, s.events, entities.Event{
		Type:       typ,
		OrderID:    orderID,
		Actor:      actor,
		OccurredAt: s.calendar.Now(),
		Details:    details,
	})
}

// loadOrder читает заказ мимо кэша: переходы должны видеть актуальный статус.
func (s *orderService) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var order entities.Order
	err := retryRead(ctx, func() (err error) {
		order, err = s.orders.GetOrder(ctx, orderID)
		return err
	})
	return order, err
}

// mergeLines проверяет корзину и объединяет повторяющиеся товары, сохраняя порядок.
func mergeLines(lines []CheckoutLine) ([]CheckoutLine, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", entities.ErrInvalidInput)
	}

	merged := make([]CheckoutLine, 0, len(lines))
	pos := make(map[string]int, len(lines))
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: bad cart line %q", entities.ErrInvalidInput, l.ProductID)
		}
		if i, ok := pos[l.ProductID]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}
		pos[l.ProductID] = len(merged)
		merged = append(merged, l)
	}
	return merged, nil
}

// priceLines фиксирует цены и названия товаров в позициях заказа.
// Остаток 0 не отклоняет заказ (его просто не сможет собрать ни один продавец),
// а положительный, но недостаточный остаток отклоняет весь заказ.
func priceLines(lines []CheckoutLine, products map[string]entities.Product) ([]entities.Item, error) {
	items := make([]entities.Item, 0, len(lines))
	var shortages []entities.Shortage

	for _, l := range lines {
		p, ok := products[l.ProductID]
		if !ok || p.Status != entities.ProductApproved {
			return nil, fmt.Errorf("%w: product %s is not available", entities.ErrInvalidInput, l.ProductID)
		}
		if p.Stock > 0 && p.Stock < l.Quantity {
			shortages = append(shortages, entities.Shortage{
				ProductID: p.ID,
				Name:      p.Name,
				Requested: l.Quantity,
				Available: p.Stock,
			})
			continue
		}

		items = append(items, entities.Item{
			ProductID: p.ID,
			Name:      p.Name,
			Unit:      p.Unit,
			Quantity:  l.Quantity,
			UnitPrice: p.UnitPrice,
			LineTotal: p.UnitPrice * entities.Amount(l.Quantity),
		})
	}

	if len(shortages) > 0 {
		return nil, &entities.ShortageError{Shortages: shortages}
	}
	return items, nil
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
