package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/middleware"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
	"github.com/SergeyBogomolovv/green-basket/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, actor entities.Actor, req service.CheckoutRequest) (service.CheckoutResult, error)
	ListOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	GetOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error)

	SellerOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	AcceptOrder(ctx context.Context, actor entities.Actor, orderID string) error
	MarkReady(ctx context.Context, actor entities.Actor, orderID string) (service.ReadyResult, error)

	ActiveDelivery(ctx context.Context, actor entities.Actor) (*service.ActiveDelivery, error)
	StartPickup(ctx context.Context, actor entities.Actor, orderID string) error
	ConfirmDelivery(ctx context.Context, actor entities.Actor, orderID, otp string) (entities.Earning, error)
	DeliveryHistory(ctx context.Context, actor entities.Actor) ([]entities.Order, error)

	DegradedOrders(ctx context.Context, actor entities.Actor, limit int) ([]entities.Order, error)
	RematchOrder(ctx context.Context, actor entities.Actor, orderID string) (service.ReconcileResult, error)
	ReallocatePartner(ctx context.Context, actor entities.Actor, orderID string) (service.ReconcileResult, error)
}

type StockService interface {
	StockView(ctx context.Context, actor entities.Actor) (service.StockView, error)
	ConfirmDailyStock(ctx context.Context, actor entities.Actor, levels []entities.StockLevel) ([]entities.StockLevel, error)
	AdjustStock(ctx context.Context, actor entities.Actor, productID string, delta int) (int, error)
}

type AvailabilityService interface {
	SetAvailability(ctx context.Context, actor entities.Actor, available bool) error
}

type EarningsService interface {
	EarningsSummary(ctx context.Context, actor entities.Actor) (entities.EarningsSummary, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate

	orders   OrderService
	stock    StockService
	partners AvailabilityService
	earnings EarningsService
}

func NewHTTPHandler(
	logger *slog.Logger,
	orders OrderService,
	stock StockService,
	partners AvailabilityService,
	earnings EarningsService,
) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: newValidator(),
		orders:   orders,
		stock:    stock,
		partners: partners,
		earnings: earnings,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Actor)

			r.Route("/customer", func(r chi.Router) {
				r.Post("/orders", h.CreateOrder)
				r.Get("/orders", h.ListOrders)
				r.Get("/orders/{order_id}", h.GetOrder)
			})

			r.Route("/seller", func(r chi.Router) {
				r.Get("/orders", h.SellerOrders)
				r.Post("/orders/{order_id}/accept", h.AcceptOrder)
				r.Post("/orders/{order_id}/ready", h.MarkReady)
				r.Get("/stock", h.StockView)
				r.Post("/stock/daily-confirm", h.ConfirmDailyStock)
				r.Patch("/stock/{product_id}/adjust", h.AdjustStock)
				r.Get("/earnings", h.Earnings)
			})

			r.Route("/delivery", func(r chi.Router) {
				r.Post("/availability", h.SetAvailability)
				r.Get("/active-order", h.ActiveOrder)
				r.Post("/orders/{order_id}/pickup", h.StartPickup)
				r.Post("/orders/{order_id}/verify-otp", h.ConfirmDelivery)
				r.Get("/history", h.DeliveryHistory)
				r.Get("/earnings", h.Earnings)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Get("/orders/degraded", h.DegradedOrders)
				r.Post("/orders/{order_id}/rematch", h.RematchOrder)
				r.Post("/orders/{order_id}/reallocate", h.ReallocatePartner)
			})
		})
	})
}

// Health проверка живости.
// @Summary      Проверка состояния
// @Tags         health
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// newValidator в ошибках валидации поля называются так же, как в JSON.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode читает и валидирует тело запроса. При ошибке ответ уже записан.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if err := h.validate.Var(value, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return "", false
	}
	return value, true
}

// writeError переводит ошибки движка в HTTP статусы. Непредвиденные ошибки
// логируются, клиент получает общий ответ.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string, attrs ...any) {
	var shortage *entities.ShortageError

	switch {
	case errors.As(err, &shortage):
		utils.WriteJSON(w, ShortageEntityToJSON(shortage), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, "insufficient stock", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrOTPAttemptsExceeded):
		utils.WriteError(w, "too many otp attempts", http.StatusTooManyRequests)
	case errors.Is(err, entities.ErrInvalidOTP):
		utils.WriteError(w, "invalid otp", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, notFoundMessage(err), http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidInput):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrPreconditionFailed):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		actor := middleware.ActorFrom(r.Context())
		attrs = append(attrs, slog.Any("error", err), slog.String("actor_id", actor.ID))
		h.logger.ErrorContext(r.Context(), msg, attrs...)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		return "order not found"
	case errors.Is(err, entities.ErrProductNotFound):
		return "product not found"
	case errors.Is(err, entities.ErrUserNotFound):
		return "user not found"
	default:
		return "not found"
	}
}
