package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
	mocks "github.com/SergeyBogomolovv/green-basket/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/green-basket/pkg/trm/mocks"
	"github.com/stretchr/testify/mock"
)

const today = "2026-10-14"

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

type testDeps struct {
	orders   *mocks.MockOrderRepo
	catalog  *mocks.MockCatalogRepo
	users    *mocks.MockUserRepo
	earnings *mocks.MockEarningRepo
	events   *mocks.MockEventPublisher
	otp      *mocks.MockOTPGate
	cache    *mocks.MockOrderCache
	tx       *txMocks.MockManager
}

func newTestDeps(t *testing.T) *testDeps {
	d := &testDeps{
		orders:   mocks.NewMockOrderRepo(t),
		catalog:  mocks.NewMockCatalogRepo(t),
		users:    mocks.NewMockUserRepo(t),
		earnings: mocks.NewMockEarningRepo(t),
		events:   mocks.NewMockEventPublisher(t),
		otp:      mocks.NewMockOTPGate(t),
		cache:    mocks.NewMockOrderCache(t),
		tx:       txMocks.NewMockManager(t),
	}

	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	d.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
	d.cache.EXPECT().Delete(mock.Anything).Return().Maybe()

	return d
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCalendar() *service.Calendar {
	return service.NewCalendar(time.UTC, func() time.Time { return fixedNow })
}

func (d *testDeps) orderService() service.Deps {
	return service.Deps{
		Logger:    testLogger(),
		TxManager: d.tx,
		Orders:    d.orders,
		Catalog:   d.catalog,
		Users:     d.users,
		Earnings:  d.earnings,
		Events:    d.events,
		OTP:       d.otp,
		Cache:     d.cache,
		Calendar:  testCalendar(),
		Pricing: service.NewPricing(config.Pricing{
			FreeDeliveryThreshold: 50000,
			DeliveryFee:           4000,
		}),
	}
}

var (
	customer = entities.Actor{ID: "c1", Role: entities.RoleCustomer}
	seller   = entities.Actor{ID: "s1", Role: entities.RoleSeller}
	partner  = entities.Actor{ID: "d1", Role: entities.RoleDelivery}
	admin    = entities.Actor{ID: "a1", Role: entities.RoleAdmin}
)

func approvedSeller(id, stockDate string) entities.User {
	return entities.User{
		ID:             id,
		Role:           entities.RoleSeller,
		ApprovalStatus: entities.ApprovalApproved,
		Status:         entities.AccountActive,
		DailyStockDate: stockDate,
	}
}

func approvedPartner(id string) entities.User {
	return entities.User{
		ID:             id,
		Role:           entities.RoleDelivery,
		ApprovalStatus: entities.ApprovalApproved,
		Status:         entities.AccountActive,
		IsAvailable:    true,
	}
}

func product(id, sellerID string, stock int, price entities.Amount) entities.Product {
	return entities.Product{
		ID:        id,
		SellerID:  sellerID,
		Name:      "product " + id,
		Unit:      "kg",
		Status:    entities.ProductApproved,
		Stock:     stock,
		UnitPrice: price,
	}
}
