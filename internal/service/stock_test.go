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

func TestStockService_StockView(t *testing.T) {
	d := newTestDeps(t)
	d.users.EXPECT().GetUser(mock.Anything, "s1").Return(approvedSeller("s1", today), nil).Once()
	d.catalog.EXPECT().SellerProducts(mock.Anything, "s1").Return([]entities.Product{
		product("p1", "s1", 0, 100),
		product("p2", "s1", 10, 100),
		product("p3", "s1", 11, 100),
	}, nil).Once()

	svc := service.NewStockService(testLogger(), d.tx, d.catalog, d.users, d.events, testCalendar())
	view, err := svc.StockView(context.Background(), seller)
	require.NoError(t, err)

	assert.True(t, view.ConfirmedToday)
	assert.Equal(t, today, view.Date)
	require.Len(t, view.Items, 3)
	assert.Equal(t, entities.StockOut, view.Items[0].Health)
	assert.Equal(t, entities.StockLow, view.Items[1].Health)
	assert.Equal(t, entities.StockHealthy, view.Items[2].Health)
}

func TestStockService_ConfirmDailyStock(t *testing.T) {
	levels := []entities.StockLevel{{ProductID: "p1", Stock: 5}, {ProductID: "p2", Stock: 0}}

	t.Run("ok", func(t *testing.T) {
		d := newTestDeps(t)
		d.catalog.EXPECT().SetStock(mock.Anything, "s1", levels).Return(levels, nil).Once()
		d.users.EXPECT().ConfirmDailyStock(mock.Anything, "s1", today).Return(nil).Once()

		svc := service.NewStockService(testLogger(), d.tx, d.catalog, d.users, d.events, testCalendar())
		got, err := svc.ConfirmDailyStock(context.Background(), seller, levels)

		require.NoError(t, err)
		assert.Equal(t, levels, got)
	})

	testCases := []struct {
		name   string
		levels []entities.StockLevel
	}{
		{name: "empty", levels: nil},
		{name: "negative", levels: []entities.StockLevel{{ProductID: "p1", Stock: -1}}},
		{name: "duplicate", levels: []entities.StockLevel{{ProductID: "p1", Stock: 1}, {ProductID: "p1", Stock: 2}}},
		{name: "no product", levels: []entities.StockLevel{{Stock: 1}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)

			svc := service.NewStockService(testLogger(), d.tx, d.catalog, d.users, d.events, testCalendar())
			_, err := svc.ConfirmDailyStock(context.Background(), seller, tc.levels)

			assert.ErrorIs(t, err, entities.ErrInvalidInput)
		})
	}
}

func TestStockService_AdjustStock(t *testing.T) {
	testCases := []struct {
		name         string
		delta        int
		mockBehavior func(d *testDeps)
		want         int
		wantErr      error
	}{
		{
			name:  "increment",
			delta: 1,
			mockBehavior: func(d *testDeps) {
				d.catalog.EXPECT().AdjustStock(mock.Anything, "s1", "p1", 1).Return(6, nil).Once()
			},
			want: 6,
		},
		{
			name:  "decrement floors at zero",
			delta: -1,
			mockBehavior: func(d *testDeps) {
				d.catalog.EXPECT().AdjustStock(mock.Anything, "s1", "p1", -1).Return(0, nil).Once()
			},
			want: 0,
		},
		{
			name:         "bulk adjustment rejected",
			delta:        5,
			mockBehavior: func(d *testDeps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:  "unknown product",
			delta: 1,
			mockBehavior: func(d *testDeps) {
				d.catalog.EXPECT().AdjustStock(mock.Anything, "s1", "p1", 1).Return(0, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			tc.mockBehavior(d)

			svc := service.NewStockService(testLogger(), d.tx, d.catalog, d.users, d.events, testCalendar())
			got, err := svc.AdjustStock(context.Background(), seller, "p1", tc.delta)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
