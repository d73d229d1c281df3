package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/green-basket/internal/middleware"
	"github.com/SergeyBogomolovv/green-basket/pkg/utils"
)

// CreateOrder оформляет заказ из корзины.
// @Summary      Оформить заказ
// @Description  Цены и названия фиксируются в заказе. Если продавец не найден, заказ создается в статусе CREATED с предупреждением
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID    header    string           true  "Идентификатор покупателя"
// @Param        X-Actor-Role  header    string           true  "Роль"  Enums(CUSTOMER)
// @Param        request       body      CheckoutRequest  true  "Корзина и адрес доставки"
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      422  {object}  ShortageResponse "Не хватает остатков"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/customer/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	var req CheckoutRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.orders.CreateOrder(ctx, actor, CheckoutJSONToRequest(req))
	if err != nil {
		h.writeError(w, r, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, CheckoutResponse{
		Order:   OrderEntityToJSON(res.Order, actor),
		Warning: res.Warning,
	}, http.StatusCreated)
}

// ListOrders возвращает заказы покупателя.
// @Summary      Мои заказы
// @Description  Последние заказы покупателя, сначала новые
// @Tags         customer
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор покупателя"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(CUSTOMER)
// @Success      200  {array}   Order
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/customer/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orders, err := h.orders.ListOrders(ctx, actor)
	if err != nil {
		h.writeError(w, r, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders, actor), http.StatusOK)
}

// GetOrder отслеживание заказа.
// @Summary      Получить заказ
// @Description  Покупатель видит свои заказы и код доставки, продавец и курьер только назначенные им
// @Tags         customer
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор участника"
// @Param        X-Actor-Role  header    string  true  "Роль"
// @Param        order_id      path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/customer/orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orderID, ok := h.pathParam(w, r, "order_id")
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(ctx, actor, orderID)
	if err != nil {
		h.writeError(w, r, err, "failed to get order", slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order, actor), http.StatusOK)
}
