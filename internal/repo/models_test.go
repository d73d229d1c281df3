package repo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToEntity(t *testing.T) {
	address := entities.Address{Address: "12 MG Road", City: "Pune", Pincode: "411001", Latitude: 18.52, Longitude: 73.85}
	data, err := AddressToJSON(address)
	require.NoError(t, err)

	created := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	order, err := OrderToEntity(Order{
		ID:              "ORD-1",
		CustomerID:      "c1",
		Status:          "CREATED",
		PaymentMethod:   "COD",
		TotalAmount:     49000,
		DeliveryFee:     4000,
		DeliveryAddress: data,
		CreatedAt:       created,
	}, []Item{{OrderID: "ORD-1", ProductID: "p1", Name: "Tomato", Quantity: 3, UnitPrice: 15000, LineTotal: 45000}})
	require.NoError(t, err)

	assert.Equal(t, address, order.DeliveryAddress)
	assert.Equal(t, entities.StatusCreated, order.Status)
	assert.Equal(t, entities.Amount(45000), order.Subtotal())
	require.Len(t, order.Items, 1)
	assert.Equal(t, entities.Amount(45000), order.Items[0].LineTotal)
}

func TestOrderToEntity_Address(t *testing.T) {
	order, err := OrderToEntity(Order{ID: "ORD-1", Status: "CREATED"}, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.Address{}, order.DeliveryAddress)
	assert.Nil(t, order.Items)

	_, err = OrderToEntity(Order{ID: "ORD-2", Status: "CREATED", DeliveryAddress: types.JSONText(`{"city":`)}, nil)
	assert.Error(t, err)
}

func TestOrderToEntity_UnknownStatus(t *testing.T) {
	_, err := OrderToEntity(Order{ID: "ORD-3", Status: "CANCELLED"}, nil)
	assert.ErrorContains(t, err, `unknown status "CANCELLED"`)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: uniqueViolation})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestListLimit(t *testing.T) {
	assert.Equal(t, uint64(maxListLimit), listLimit(0))
	assert.Equal(t, uint64(maxListLimit), listLimit(maxListLimit+1))
	assert.Equal(t, uint64(25), listLimit(25))
}

func TestStatusStrings(t *testing.T) {
	got := statusStrings(entities.SellerActiveStatuses)
	assert.Equal(t, []string{"ASSIGNED", "ACCEPTED", "READY_FOR_PICKUP"}, got)
}
