package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/handler"
	mocks "github.com/SergeyBogomolovv/green-basket/internal/handler/mocks"
	"github.com/SergeyBogomolovv/green-basket/internal/middleware"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	customer = entities.Actor{ID: "c1", Role: entities.RoleCustomer}
	seller   = entities.Actor{ID: "s1", Role: entities.RoleSeller}
	partner  = entities.Actor{ID: "d1", Role: entities.RoleDelivery}
	admin    = entities.Actor{ID: "a1", Role: entities.RoleAdmin}
)

type testServer struct {
	orders   *mocks.MockOrderService
	stock    *mocks.MockStockService
	partners *mocks.MockAvailabilityService
	earnings *mocks.MockEarningsService
	router   chi.Router
}

func newTestServer(t *testing.T) *testServer {
	s := &testServer{
		orders:   mocks.NewMockOrderService(t),
		stock:    mocks.NewMockStockService(t),
		partners: mocks.NewMockAvailabilityService(t),
		earnings: mocks.NewMockEarningsService(t),
		router:   chi.NewRouter(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler.NewHTTPHandler(logger, s.orders, s.stock, s.partners, s.earnings).Init(s.router)
	return s
}

func (s *testServer) do(t *testing.T, method, path string, actor entities.Actor, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if actor.ID != "" {
		req.Header.Set(middleware.HeaderActorID, actor.ID)
		req.Header.Set(middleware.HeaderActorRole, string(actor.Role))
	}
	rr := httptest.NewRecorder()

	s.router.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func sampleOrder() entities.Order {
	return entities.Order{
		ID:            "ORD-1A2B3C4D",
		CustomerID:    "c1",
		SellerID:      "s1",
		Status:        entities.StatusAssigned,
		DeliveryOTP:   "482913",
		PaymentMethod: entities.PaymentCOD,
		TotalAmount:   49000,
		DeliveryFee:   4000,
		Items: []entities.Item{
			{ProductID: "p1", Name: "Tomato", Unit: "kg", Quantity: 3, UnitPrice: 15000, LineTotal: 45000},
		},
	}
}

const checkoutBody = `{
	"items": [{"product_id": "p1", "quantity": 3}],
	"delivery_address": {"address": "12 MG Road", "city": "Pune", "latitude": 18.52, "longitude": 73.85}
}`

func TestHTTPHandler_Health(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/health", entities.Actor{}, "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestHTTPHandler_Unauthorized(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/customer/orders", entities.Actor{}, "")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, `"unauthorized"`)
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(s *testServer)
		wantStatus   int
		wantBody     []string
	}{
		{
			name: "success",
			body: checkoutBody,
			mockBehavior: func(s *testServer) {
				s.orders.EXPECT().
					CreateOrder(mock.Anything, customer, mock.MatchedBy(func(req service.CheckoutRequest) bool {
						return len(req.Items) == 1 && req.Items[0].Quantity == 3 && req.DeliveryAddress.City == "Pune"
					})).
					Return(service.CheckoutResult{Order: sampleOrder()}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"order_id":"ORD-1A2B3C4D"`, `"total_amount":490.00`, `"subtotal":450.00`, `"delivery_otp":"482913"`},
		},
		{
			name: "no seller available",
			body: checkoutBody,
			mockBehavior: func(s *testServer) {
				order := sampleOrder()
				order.SellerID = ""
				order.Status = entities.StatusCreated
				s.orders.EXPECT().
					CreateOrder(mock.Anything, customer, mock.Anything).
					Return(service.CheckoutResult{Order: order, Warning: service.WarningNoSeller}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"status":"CREATED"`, `"warning":"` + service.WarningNoSeller + `"`},
		},
		{
			name:         "zero quantity",
			body:         `{"items":[{"product_id":"p1","quantity":0}],"delivery_address":{"address":"a","city":"b"}}`,
			mockBehavior: func(s *testServer) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"items[0].quantity":"gt"`},
		},
		{
			name:         "unknown field",
			body:         `{"items":[{"product_id":"p1","quantity":1}],"coupon":"FREE"}`,
			mockBehavior: func(s *testServer) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"invalid request body"`},
		},
		{
			name: "insufficient stock",
			body: checkoutBody,
			mockBehavior: func(s *testServer) {
				s.orders.EXPECT().
					CreateOrder(mock.Anything, customer, mock.Anything).
					Return(service.CheckoutResult{}, &entities.ShortageError{Shortages: []entities.Shortage{
						{ProductID: "p1", Name: "Tomato", Requested: 3, Available: 2},
					}}).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{`"product_id":"p1"`, `"requested":3`, `"available":2`},
		},
		{
			name: "internal error",
			body: checkoutBody,
			mockBehavior: func(s *testServer) {
				s.orders.EXPECT().
					CreateOrder(mock.Anything, customer, mock.Anything).
					Return(service.CheckoutResult{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"internal server error"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s)

			status, body := s.do(t, http.MethodPost, "/api/customer/orders", customer, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			for _, want := range tc.wantBody {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name       string
		actor      entities.Actor
		err        error
		wantStatus int
		wantOTP    bool
	}{
		{name: "owner sees otp", actor: customer, wantStatus: http.StatusOK, wantOTP: true},
		{name: "seller does not see otp", actor: seller, wantStatus: http.StatusOK},
		{name: "not found", actor: customer, err: entities.ErrOrderNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)

			order := sampleOrder()
			if tc.err != nil {
				order = entities.Order{}
			}
			s.orders.EXPECT().GetOrder(mock.Anything, tc.actor, "ORD-1A2B3C4D").Return(order, tc.err).Once()

			status, body := s.do(t, http.MethodGet, "/api/customer/orders/ORD-1A2B3C4D", tc.actor, "")

			assert.Equal(t, tc.wantStatus, status)
			if tc.wantStatus != http.StatusOK {
				assert.Contains(t, body, `"order not found"`)
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			_, hasOTP := resp["delivery_otp"]
			assert.Equal(t, tc.wantOTP, hasOTP)
		})
	}
}

func TestHTTPHandler_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "precondition", err: fmt.Errorf("%w: order is ACCEPTED", entities.ErrPreconditionFailed), wantStatus: http.StatusConflict},
		{name: "forbidden", err: entities.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "not found", err: entities.ErrOrderNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			s.orders.EXPECT().AcceptOrder(mock.Anything, seller, "ORD-1").Return(tc.err).Once()

			status, _ := s.do(t, http.MethodPost, "/api/seller/orders/ORD-1/accept", seller, "")

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestHTTPHandler_MarkReady(t *testing.T) {
	s := newTestServer(t)
	s.orders.EXPECT().
		MarkReady(mock.Anything, seller, "ORD-1").
		Return(service.ReadyResult{Warning: service.WarningNoPartner}, nil).Once()

	status, body := s.do(t, http.MethodPost, "/api/seller/orders/ORD-1/ready", seller, "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"success":true,"warning":"`+service.WarningNoPartner+`"}`, body)
}

func TestHTTPHandler_Stock(t *testing.T) {
	t.Run("view", func(t *testing.T) {
		s := newTestServer(t)
		s.stock.EXPECT().StockView(mock.Anything, seller).Return(service.StockView{
			Date:           "2026-10-14",
			ConfirmedToday: true,
			Items: []service.StockItem{{
				Product: entities.Product{ID: "p1", Name: "Tomato", Unit: "kg", Stock: 4, UnitPrice: 15000},
				Health:  entities.StockLow,
			}},
		}, nil).Once()

		status, body := s.do(t, http.MethodGet, "/api/seller/stock", seller, "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"health":"low"`)
		assert.Contains(t, body, `"confirmed_today":true`)
	})

	t.Run("daily confirm", func(t *testing.T) {
		s := newTestServer(t)
		levels := []entities.StockLevel{{ProductID: "p1", Stock: 20}, {ProductID: "p2", Stock: 0}}
		s.stock.EXPECT().ConfirmDailyStock(mock.Anything, seller, levels).Return(levels, nil).Once()

		status, body := s.do(t, http.MethodPost, "/api/seller/stock/daily-confirm", seller,
			`{"items":[{"product_id":"p1","stock":20},{"product_id":"p2","stock":0}]}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"success":true`)
	})

	t.Run("negative stock", func(t *testing.T) {
		s := newTestServer(t)

		status, body := s.do(t, http.MethodPost, "/api/seller/stock/daily-confirm", seller,
			`{"items":[{"product_id":"p1","stock":-1}]}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"items[0].stock":"gte"`)
	})

	t.Run("adjust", func(t *testing.T) {
		s := newTestServer(t)
		s.stock.EXPECT().AdjustStock(mock.Anything, seller, "p1", -1).Return(3, nil).Once()

		status, body := s.do(t, http.MethodPatch, "/api/seller/stock/p1/adjust", seller, `{"delta":-1}`)

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"product_id":"p1","stock":3}`, body)
	})

	t.Run("adjust by two", func(t *testing.T) {
		s := newTestServer(t)

		status, _ := s.do(t, http.MethodPatch, "/api/seller/stock/p1/adjust", seller, `{"delta":2}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_Earnings(t *testing.T) {
	s := newTestServer(t)
	s.earnings.EXPECT().EarningsSummary(mock.Anything, partner).Return(entities.EarningsSummary{
		Total:   10000,
		Pending: 10000,
		Transactions: []entities.Earning{
			{ID: "e1", OrderID: "ORD-1", Role: entities.RoleDelivery, Amount: 10000, Status: entities.EarningPending},
		},
	}, nil).Once()

	status, body := s.do(t, http.MethodGet, "/api/delivery/earnings", partner, "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"total":100.00`)
	assert.Contains(t, body, `"paid":0.00`)
	assert.Contains(t, body, `"status":"PENDING"`)
}

func TestHTTPHandler_SetAvailability(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t)
		s.partners.EXPECT().SetAvailability(mock.Anything, partner, false).Return(nil).Once()

		status, body := s.do(t, http.MethodPost, "/api/delivery/availability", partner, `{"is_available":false}`)

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"success":true}`, body)
	})

	t.Run("missing flag", func(t *testing.T) {
		s := newTestServer(t)

		status, body := s.do(t, http.MethodPost, "/api/delivery/availability", partner, `{}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"is_available":"required"`)
	})
}

func TestHTTPHandler_ActiveOrder(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		s := newTestServer(t)
		s.orders.EXPECT().ActiveDelivery(mock.Anything, partner).Return(nil, nil).Once()

		status, body := s.do(t, http.MethodGet, "/api/delivery/active-order", partner, "")

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"order":null}`, body)
	})

	t.Run("with seller", func(t *testing.T) {
		s := newTestServer(t)
		order := sampleOrder()
		order.Status = entities.StatusReadyForPickup
		order.DeliveryPartnerID = "d1"
		s.orders.EXPECT().ActiveDelivery(mock.Anything, partner).Return(&service.ActiveDelivery{
			Order:  order,
			Seller: entities.User{ID: "s1", ShopName: "Fresh Farm", City: "Pune"},
		}, nil).Once()

		status, body := s.do(t, http.MethodGet, "/api/delivery/active-order", partner, "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"shop_name":"Fresh Farm"`)
		assert.NotContains(t, body, "delivery_otp")
	})
}

func TestHTTPHandler_ConfirmDelivery(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(s *testServer)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"otp":"123456"}`,
			mockBehavior: func(s *testServer) {
				s.orders.EXPECT().ConfirmDelivery(mock.Anything, partner, "ORD-1", "123456").
					Return(entities.Earning{ID: "e1", OrderID: "ORD-1", Role: entities.RoleDelivery, Amount: 4900, Status: entities.EarningPending}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"amount":49.00`,
		},
		{
			name: "wrong otp",
			body: `{"otp":"000000"}`,
			mockBehavior: func(s *testServer) {
				s.orders.EXPECT().ConfirmDelivery(mock.Anything, partner, "ORD-1", "000000").
					Return(entities.Earning{}, entities.ErrInvalidOTP).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"invalid otp"`,
		},
		{
			name: "too many attempts",
			body: `{"otp":"000000"}`,
			mockBehavior: func(s *testServer) {
				s.orders.EXPECT().ConfirmDelivery(mock.Anything, partner, "ORD-1", "000000").
					Return(entities.Earning{}, entities.ErrOTPAttemptsExceeded).Once()
			},
			wantStatus: http.StatusTooManyRequests,
			wantBody:   `"too many otp attempts"`,
		},
		{
			name:         "short otp",
			body:         `{"otp":"12345"}`,
			mockBehavior: func(s *testServer) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"otp":"len"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s)

			status, body := s.do(t, http.MethodPost, "/api/delivery/orders/ORD-1/verify-otp", partner, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_DeliveryFlow(t *testing.T) {
	s := newTestServer(t)
	s.orders.EXPECT().StartPickup(mock.Anything, partner, "ORD-1").Return(nil).Once()
	s.orders.EXPECT().DeliveryHistory(mock.Anything, partner).Return([]entities.Order{sampleOrder()}, nil).Once()

	status, _ := s.do(t, http.MethodPost, "/api/delivery/orders/ORD-1/pickup", partner, "")
	assert.Equal(t, http.StatusOK, status)

	status, body := s.do(t, http.MethodGet, "/api/delivery/history", partner, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"order_id":"ORD-1A2B3C4D"`)
}

func TestHTTPHandler_Admin(t *testing.T) {
	t.Run("degraded with limit", func(t *testing.T) {
		s := newTestServer(t)
		s.orders.EXPECT().DegradedOrders(mock.Anything, admin, 20).Return([]entities.Order{}, nil).Once()

		status, body := s.do(t, http.MethodGet, "/api/admin/orders/degraded?limit=20", admin, "")

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, body)
	})

	t.Run("bad limit", func(t *testing.T) {
		s := newTestServer(t)

		status, _ := s.do(t, http.MethodGet, "/api/admin/orders/degraded?limit=ten", admin, "")

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("rematch", func(t *testing.T) {
		s := newTestServer(t)
		s.orders.EXPECT().RematchOrder(mock.Anything, admin, "ORD-1").Return(service.ReconcileResult{
			OrderID:  "ORD-1",
			Status:   entities.StatusAssigned,
			SellerID: "s1",
		}, nil).Once()

		status, body := s.do(t, http.MethodPost, "/api/admin/orders/ORD-1/rematch", admin, "")

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"order_id":"ORD-1","status":"ASSIGNED","seller_id":"s1"}`, body)
	})

	t.Run("reallocate without partner", func(t *testing.T) {
		s := newTestServer(t)
		s.orders.EXPECT().ReallocatePartner(mock.Anything, admin, "ORD-1").Return(service.ReconcileResult{
			OrderID: "ORD-1",
			Status:  entities.StatusReadyForPickup,
			Warning: service.WarningNoPartner,
		}, nil).Once()

		status, body := s.do(t, http.MethodPost, "/api/admin/orders/ORD-1/reallocate", admin, "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, service.WarningNoPartner)
	})
}
