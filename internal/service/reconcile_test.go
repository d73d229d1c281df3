package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func unmatchedOrder() entities.Order {
	o := assignedOrder()
	o.SellerID = ""
	o.Status = entities.StatusCreated
	return o
}

func TestOrderService_RematchOrder(t *testing.T) {
	t.Run("seller found", func(t *testing.T) {
		d := newTestDeps(t)
		d.orders.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(unmatchedOrder(), nil).Once()
		d.catalog.EXPECT().ProductsByIDs(mock.Anything, []string{"p1"}).
			Return([]entities.Product{product("p1", "s1", 10, 9000)}, nil).Once()
		d.users.EXPECT().UsersByIDs(mock.Anything, []string{"s1"}).
			Return([]entities.User{approvedSeller("s1", today)}, nil).Once()
		d.orders.EXPECT().AssignSeller(mock.Anything, "ORD-1", "s1").Return(nil).Once()

		svc := service.NewOrderService(d.orderService())
		res, err := svc.RematchOrder(context.Background(), admin, "ORD-1")

		require.NoError(t, err)
		assert.Equal(t, entities.StatusAssigned, res.Status)
		assert.Equal(t, "s1", res.SellerID)
		assert.Empty(t, res.Warning)
	})

	t.Run("still no seller", func(t *testing.T) {
		d := newTestDeps(t)
		d.orders.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(unmatchedOrder(), nil).Once()
		d.catalog.EXPECT().ProductsByIDs(mock.Anything, []string{"p1"}).
			Return([]entities.Product{product("p1", "s1", 0, 9000)}, nil).Once()
		d.users.EXPECT().UsersByIDs(mock.Anything, []string{"s1"}).
			Return([]entities.User{approvedSeller("s1", today)}, nil).Once()

		svc := service.NewOrderService(d.orderService())
		res, err := svc.RematchOrder(context.Background(), admin, "ORD-1")

		require.NoError(t, err)
		assert.Equal(t, entities.StatusCreated, res.Status)
		assert.Equal(t, service.WarningNoSeller, res.Warning)
	})

	t.Run("already assigned", func(t *testing.T) {
		d := newTestDeps(t)
		d.orders.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(assignedOrder(), nil).Once()

		svc := service.NewOrderService(d.orderService())
		_, err := svc.RematchOrder(context.Background(), admin, "ORD-1")

		assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
	})

	t.Run("admin only", func(t *testing.T) {
		d := newTestDeps(t)

		svc := service.NewOrderService(d.orderService())
		_, err := svc.RematchOrder(context.Background(), seller, "ORD-1")

		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestOrderService_ReallocatePartner(t *testing.T) {
	awaiting := assignedOrder()
	awaiting.Status = entities.StatusReadyForPickup

	t.Run("partner found", func(t *testing.T) {
		d := newTestDeps(t)
		d.orders.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(awaiting, nil).Once()
		d.users.EXPECT().ClaimPartner(mock.Anything).Return(approvedPartner("d7"), nil).Once()
		d.otp.EXPECT().Issue(mock.Anything).Return("654321", nil).Once()
		d.orders.EXPECT().BindPartner(mock.Anything, "ORD-1", "d7", "654321").Return(nil).Once()

		svc := service.NewOrderService(d.orderService())
		res, err := svc.ReallocatePartner(context.Background(), admin, "ORD-1")

		require.NoError(t, err)
		assert.Equal(t, "d7", res.PartnerID)
	})

	t.Run("no partner", func(t *testing.T) {
		d := newTestDeps(t)
		d.orders.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(awaiting, nil).Once()
		d.users.EXPECT().ClaimPartner(mock.Anything).Return(entities.User{}, entities.ErrNoPartnerAvailable).Once()

		svc := service.NewOrderService(d.orderService())
		res, err := svc.ReallocatePartner(context.Background(), admin, "ORD-1")

		require.NoError(t, err)
		assert.Equal(t, service.WarningNoPartner, res.Warning)
	})

	t.Run("partner already bound", func(t *testing.T) {
		d := newTestDeps(t)
		d.orders.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(outForDelivery(), nil).Once()

		svc := service.NewOrderService(d.orderService())
		_, err := svc.ReallocatePartner(context.Background(), admin, "ORD-1")

		assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
	})
}

func TestOrderService_DegradedOrders(t *testing.T) {
	d := newTestDeps(t)
	d.orders.EXPECT().ListDegraded(mock.Anything, 500).Return([]entities.Order{unmatchedOrder()}, nil).Once()

	svc := service.NewOrderService(d.orderService())
	orders, err := svc.DegradedOrders(context.Background(), admin, 0)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
