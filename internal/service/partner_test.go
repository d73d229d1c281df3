package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPartnerService_SetAvailability(t *testing.T) {
	active := entities.OrderFilter{
		DeliveryPartnerID: "d1",
		Statuses:          entities.DeliveryActiveStatuses,
		Limit:             1,
	}

	testCases := []struct {
		name         string
		available    bool
		mockBehavior func(d *testDeps)
		wantErr      error
	}{
		{
			name:      "go online",
			available: true,
			mockBehavior: func(d *testDeps) {
				d.users.EXPECT().GetUser(mock.Anything, "d1").Return(approvedPartner("d1"), nil).Once()
				d.orders.EXPECT().ListOrders(mock.Anything, active).Return([]entities.Order{}, nil).Once()
				d.users.EXPECT().SetAvailability(mock.Anything, "d1", true).Return(nil).Once()
			},
		},
		{
			name:      "go offline",
			available: false,
			mockBehavior: func(d *testDeps) {
				d.users.EXPECT().GetUser(mock.Anything, "d1").Return(approvedPartner("d1"), nil).Once()
				d.users.EXPECT().SetAvailability(mock.Anything, "d1", false).Return(nil).Once()
			},
		},
		{
			name:      "busy with an order",
			available: true,
			mockBehavior: func(d *testDeps) {
				d.users.EXPECT().GetUser(mock.Anything, "d1").Return(approvedPartner("d1"), nil).Once()
				d.orders.EXPECT().ListOrders(mock.Anything, active).Return([]entities.Order{outForDelivery()}, nil).Once()
			},
			wantErr: entities.ErrPreconditionFailed,
		},
		{
			name:      "not approved",
			available: true,
			mockBehavior: func(d *testDeps) {
				u := approvedPartner("d1")
				u.ApprovalStatus = entities.ApprovalPending
				d.users.EXPECT().GetUser(mock.Anything, "d1").Return(u, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			tc.mockBehavior(d)

			svc := service.NewPartnerService(testLogger(), d.users, d.orders)
			err := svc.SetAvailability(context.Background(), partner, tc.available)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				d.users.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEarningsService_Summary(t *testing.T) {
	d := newTestDeps(t)
	d.earnings.EXPECT().ListEarnings(mock.Anything, "s1").Return([]entities.Earning{
		{Amount: 85000, Status: entities.EarningPending},
		{Amount: 15000, Status: entities.EarningPaid},
	}, nil).Once()

	svc := service.NewEarningsService(testLogger(), d.earnings)
	summary, err := svc.EarningsSummary(context.Background(), seller)

	assert.NoError(t, err)
	assert.Equal(t, entities.Amount(100000), summary.Total)
	assert.Equal(t, entities.Amount(15000), summary.Paid)
	assert.Equal(t, entities.Amount(85000), summary.Pending)

	_, err = svc.EarningsSummary(context.Background(), customer)
	assert.ErrorIs(t, err, entities.ErrForbidden)
}
