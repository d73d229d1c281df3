package service

import (
	"context"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/pkg/utils"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	ListDegraded(ctx context.Context, limit int) ([]entities.Order, error)

	// Условные обновления: ноль затронутых строк возвращается как ErrPreconditionFailed
	Transition(ctx context.Context, t entities.Transition) error
	AssignSeller(ctx context.Context, orderID, sellerID string) error
	BindPartner(ctx context.Context, orderID, partnerID, otp string) error
}

type CatalogRepo interface {
	ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
	SellerProducts(ctx context.Context, sellerID string) ([]entities.Product, error)

	DecrementStock(ctx context.Context, orderID, sellerID, productID string, qty int) (int, error)
	SetStock(ctx context.Context, sellerID string, levels []entities.StockLevel) ([]entities.StockLevel, error)
	AdjustStock(ctx context.Context, sellerID, productID string, delta int) (int, error)
}

type UserRepo interface {
	GetUser(ctx context.Context, userID string) (entities.User, error)
	UsersByIDs(ctx context.Context, ids []string) ([]entities.User, error)

	// ClaimPartner атомарно снимает доступность первого свободного курьера
	ClaimPartner(ctx context.Context) (entities.User, error)
	SetAvailability(ctx context.Context, partnerID string, available bool) error
	ConfirmDailyStock(ctx context.Context, sellerID, date string) error
}

type EarningRepo interface {
	SaveEarnings(ctx context.Context, earnings []entities.Earning) error
	ListEarnings(ctx context.Context, userID string) ([]entities.Earning, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, e entities.Event) error
}

type OTPGate interface {
	Issue(ctx context.Context) (string, error)
	Verify(ctx context.Context, orderID, issued, submitted string) error
	Clear(ctx context.Context, orderID string) error
}

type OrderCache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
	Delete(key string)
}

// retryRead повторяет только чтения; NotFound не повторяется.
func retryRead(ctx context.Context, fn func() error) error {
	return utils.Retry(ctx, utils.DefaultRetry, fn, entities.ErrNotFound, context.Canceled, context.DeadlineExceeded)
}
