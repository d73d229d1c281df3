package service_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_Today(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC уже следующий день в Индии
	now := time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-14", service.NewCalendar(time.UTC, func() time.Time { return now }).Today())
	assert.Equal(t, "2026-10-15", service.NewCalendar(kolkata, func() time.Time { return now }).Today())
}

func TestPricing_DeliveryFee(t *testing.T) {
	p := service.NewPricing(config.Pricing{FreeDeliveryThreshold: 50000, DeliveryFee: 4000})

	testCases := []struct {
		subtotal entities.Amount
		want     entities.Amount
	}{
		{subtotal: 45000, want: 4000},
		{subtotal: 49999, want: 4000},
		{subtotal: 50000, want: 0},
		{subtotal: 60000, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.subtotal.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, p.DeliveryFee(tc.subtotal))
		})
	}
}

func TestSplit(t *testing.T) {
	order := entities.Order{ID: "ORD-1", SellerID: "s1", DeliveryPartnerID: "d1", TotalAmount: 100000}

	s, d := service.Split(order, fixedNow)

	assert.Equal(t, entities.Amount(85000), s.Amount)
	assert.Equal(t, "850.00", s.Amount.String())
	assert.Equal(t, entities.RoleSeller, s.Role)
	assert.Equal(t, "s1", s.UserID)

	assert.Equal(t, entities.Amount(10000), d.Amount)
	assert.Equal(t, "100.00", d.Amount.String())
	assert.Equal(t, entities.RoleDelivery, d.Role)
	assert.Equal(t, "d1", d.UserID)

	for _, e := range []entities.Earning{s, d} {
		assert.Equal(t, entities.EarningPending, e.Status)
		assert.Equal(t, "ORD-1", e.OrderID)
		assert.NotEmpty(t, e.ID)
	}
	assert.NotEqual(t, s.ID, d.ID)
}

func TestSplit_Rounding(t *testing.T) {
	s, d := service.Split(entities.Order{TotalAmount: 333}, fixedNow)

	assert.Equal(t, entities.Amount(283), s.Amount)
	assert.Equal(t, entities.Amount(33), d.Amount)
	assert.LessOrEqual(t, s.Amount+d.Amount, entities.Amount(333))
}
