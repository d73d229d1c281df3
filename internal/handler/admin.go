package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/green-basket/internal/middleware"
	"github.com/SergeyBogomolovv/green-basket/pkg/utils"
)

// DegradedOrders заказы, застрявшие без продавца или курьера.
// @Summary      Заказы без продавца или курьера
// @Tags         admin
// @Produce      json
// @Param        X-Actor-ID    header    string  true   "Идентификатор администратора"
// @Param        X-Actor-Role  header    string  true   "Роль"  Enums(ADMIN)
// @Param        limit         query     int     false  "Максимум заказов"  minimum(1)  maximum(500)
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/orders/degraded [get]
func (h *HTTPHandler) DegradedOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if err := h.validate.Var(raw, "numeric"); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
		limit, _ = strconv.Atoi(raw)
	}

	orders, err := h.orders.DegradedOrders(ctx, actor, limit)
	if err != nil {
		h.writeError(w, r, err, "failed to list degraded orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders, actor), http.StatusOK)
}

// RematchOrder повторный подбор продавца.
// @Summary      Подобрать продавца заново
// @Tags         admin
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор администратора"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(ADMIN)
// @Param        order_id      path      string  true  "Идентификатор заказа"
// @Success      200  {object}  ReconcileResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже не ждет продавца"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/orders/{order_id}/rematch [post]
func (h *HTTPHandler) RematchOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orderID, ok := h.pathParam(w, r, "order_id")
	if !ok {
		return
	}

	res, err := h.orders.RematchOrder(ctx, actor, orderID)
	if err != nil {
		h.writeError(w, r, err, "failed to rematch order", slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, ReconcileResultToJSON(res), http.StatusOK)
}

// ReallocatePartner повторный подбор курьера.
// @Summary      Подобрать курьера заново
// @Tags         admin
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор администратора"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(ADMIN)
// @Param        order_id      path      string  true  "Идентификатор заказа"
// @Success      200  {object}  ReconcileResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже не ждет курьера"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/admin/orders/{order_id}/reallocate [post]
func (h *HTTPHandler) ReallocatePartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orderID, ok := h.pathParam(w, r, "order_id")
	if !ok {
		return
	}

	res, err := h.orders.ReallocatePartner(ctx, actor, orderID)
	if err != nil {
		h.writeError(w, r, err, "failed to reallocate partner", slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, ReconcileResultToJSON(res), http.StatusOK)
}
