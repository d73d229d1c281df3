package entities_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	sequence := []entities.Status{
		entities.StatusCreated,
		entities.StatusAssigned,
		entities.StatusAccepted,
		entities.StatusReadyForPickup,
		entities.StatusOutForDelivery,
		entities.StatusDelivered,
	}

	for i, from := range sequence {
		for j, to := range sequence {
			want := j == i+1
			assert.Equal(t, want, entities.CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, entities.CanTransition(entities.StatusDelivered, entities.StatusCreated))
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, entities.StatusDelivered.Valid())
	assert.True(t, entities.StatusCreated.Valid())
	assert.False(t, entities.Status("CANCELLED").Valid())
}

func TestOrder_Degraded(t *testing.T) {
	assert.True(t, entities.Order{Status: entities.StatusCreated}.AwaitingSeller())
	assert.False(t, entities.Order{Status: entities.StatusAssigned, SellerID: "s1"}.AwaitingSeller())
	assert.True(t, entities.Order{Status: entities.StatusReadyForPickup}.AwaitingPartner())
	assert.False(t, entities.Order{Status: entities.StatusReadyForPickup, DeliveryPartnerID: "d1"}.AwaitingPartner())
}

func TestActor_Require(t *testing.T) {
	seller := entities.Actor{ID: "s1", Role: entities.RoleSeller}

	assert.NoError(t, seller.Require(entities.RoleSeller))
	assert.ErrorIs(t, seller.Require(entities.RoleDelivery), entities.ErrForbidden)
	assert.ErrorIs(t, entities.Actor{Role: entities.RoleSeller}.Require(entities.RoleSeller), entities.ErrForbidden)
	assert.NoError(t, seller.Require(entities.RoleDelivery, entities.RoleSeller))
}

func TestErrorTaxonomy(t *testing.T) {
	assert.True(t, errors.Is(entities.ErrOrderNotFound, entities.ErrNotFound))
	assert.True(t, errors.Is(entities.ErrInvalidOTP, entities.ErrPreconditionFailed))
	assert.True(t, errors.Is(entities.ErrOTPAttemptsExceeded, entities.ErrPreconditionFailed))
	assert.False(t, errors.Is(entities.ErrInsufficientStock, entities.ErrPreconditionFailed))
}

func TestUser_Eligibility(t *testing.T) {
	seller := entities.User{
		ID:             "s1",
		Role:           entities.RoleSeller,
		ApprovalStatus: entities.ApprovalApproved,
		Status:         entities.AccountActive,
		DailyStockDate: "2026-10-14",
	}
	assert.True(t, seller.CanFulfill("2026-10-14"))
	assert.False(t, seller.CanFulfill("2026-10-15"))

	seller.Status = entities.AccountSuspended
	assert.False(t, seller.CanFulfill("2026-10-14"))

	partner := entities.User{
		ID:             "d1",
		Role:           entities.RoleDelivery,
		ApprovalStatus: entities.ApprovalApproved,
		Status:         entities.AccountActive,
		IsAvailable:    true,
	}
	assert.True(t, partner.CanDeliver())
	partner.IsAvailable = false
	assert.True(t, partner.CanDeliver())
	partner.ApprovalStatus = entities.ApprovalPending
	assert.False(t, partner.CanDeliver())
	partner.ApprovalStatus = entities.ApprovalApproved
	partner.Role = entities.RoleSeller
	assert.False(t, partner.CanDeliver())
}

func TestSummarize(t *testing.T) {
	s := entities.Summarize([]entities.Earning{
		{Amount: 85000, Status: entities.EarningPending},
		{Amount: 10000, Status: entities.EarningPaid},
	})
	assert.Equal(t, entities.Amount(95000), s.Total)
	assert.Equal(t, entities.Amount(10000), s.Paid)
	assert.Equal(t, entities.Amount(85000), s.Pending)
	assert.Len(t, s.Transactions, 2)
}

func TestHealthOf(t *testing.T) {
	assert.Equal(t, entities.StockOut, entities.HealthOf(0))
	assert.Equal(t, entities.StockLow, entities.HealthOf(1))
	assert.Equal(t, entities.StockLow, entities.HealthOf(10))
	assert.Equal(t, entities.StockHealthy, entities.HealthOf(11))
}

func TestShortageError(t *testing.T) {
	err := fmt.Errorf("checkout: %w", &entities.ShortageError{Shortages: []entities.Shortage{
		{ProductID: "p1", Name: "Tomato", Requested: 5, Available: 2},
		{ProductID: "p2", Name: "Onion", Requested: 3, Available: 1},
	}})

	assert.ErrorIs(t, err, entities.ErrInsufficientStock)

	var se *entities.ShortageError
	require.ErrorAs(t, err, &se)
	assert.Len(t, se.Shortages, 2)
	assert.Contains(t, err.Error(), "Tomato: requested 5, available 2")
	assert.Contains(t, err.Error(), "Onion: requested 3, available 1")
}

func TestProductIDs(t *testing.T) {
	items := []entities.Item{{ProductID: "p2"}, {ProductID: "p1"}}
	assert.Equal(t, []string{"p2", "p1"}, entities.ProductIDs(items))
	assert.Empty(t, entities.ProductIDs(nil))
}
