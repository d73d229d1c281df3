package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/green-basket/internal/middleware"
	"github.com/SergeyBogomolovv/green-basket/pkg/utils"
)

// SetAvailability курьер выходит на линию или уходит с нее.
// @Summary      Доступность курьера
// @Description  Нельзя выйти на линию, пока есть незавершенный заказ
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID    header    string               true  "Идентификатор курьера"
// @Param        X-Actor-Role  header    string               true  "Роль"  Enums(DELIVERY)
// @Param        request       body      AvailabilityRequest  true  "Доступность"
// @Success      200  {object}  utils.SuccessResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Курьер не одобрен"
// @Failure      409  {object}  utils.ErrorResponse "Есть активный заказ"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/delivery/availability [post]
func (h *HTTPHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	var req AvailabilityRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.partners.SetAvailability(ctx, actor, *req.IsAvailable); err != nil {
		h.writeError(w, r, err, "failed to set availability")
		return
	}

	utils.WriteSuccess(w, "")
}

// ActiveOrder текущий заказ курьера.
// @Summary      Активный заказ
// @Description  Заказ в READY_FOR_PICKUP или OUT_FOR_DELIVERY вместе с адресом продавца
// @Tags         delivery
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор курьера"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(DELIVERY)
// @Success      200  {object}  ActiveOrderResponse
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/delivery/active-order [get]
func (h *HTTPHandler) ActiveOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	active, err := h.orders.ActiveDelivery(ctx, actor)
	if err != nil {
		h.writeError(w, r, err, "failed to get active order")
		return
	}

	var res ActiveOrderResponse
	if active != nil {
		order := OrderEntityToJSON(active.Order, actor)
		res.Order = &order
		if active.Seller.ID != "" {
			res.Seller = SellerEntityToJSON(active.Seller)
		}
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

// StartPickup курьер забрал заказ у продавца.
// @Summary      Забрать заказ
// @Tags         delivery
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор курьера"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(DELIVERY)
// @Param        order_id      path      string  true  "Идентификатор заказа"
// @Success      200  {object}  utils.SuccessResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в статусе READY_FOR_PICKUP"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/delivery/orders/{order_id}/pickup [post]
func (h *HTTPHandler) StartPickup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orderID, ok := h.pathParam(w, r, "order_id")
	if !ok {
		return
	}

	if err := h.orders.StartPickup(ctx, actor, orderID); err != nil {
		h.writeError(w, r, err, "failed to start pickup", slog.String("order_id", orderID))
		return
	}

	utils.WriteSuccess(w, "")
}

// ConfirmDelivery подтверждение доставки кодом покупателя.
// @Summary      Подтвердить доставку
// @Description  При верном коде заказ доставлен, продавцу и курьеру начисляются выплаты
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID    header    string            true  "Идентификатор курьера"
// @Param        X-Actor-Role  header    string            true  "Роль"  Enums(DELIVERY)
// @Param        order_id      path      string            true  "Идентификатор заказа"
// @Param        request       body      VerifyOTPRequest  true  "Код доставки"
// @Success      200  {object}  DeliveryResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в статусе OUT_FOR_DELIVERY"
// @Failure      422  {object}  utils.ErrorResponse "Неверный код"
// @Failure      429  {object}  utils.ErrorResponse "Слишком много попыток"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/delivery/orders/{order_id}/verify-otp [post]
func (h *HTTPHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orderID, ok := h.pathParam(w, r, "order_id")
	if !ok {
		return
	}

	var req VerifyOTPRequest
	if !h.decode(w, r, &req) {
		return
	}

	earning, err := h.orders.ConfirmDelivery(ctx, actor, orderID, req.OTP)
	if err != nil {
		h.writeError(w, r, err, "failed to confirm delivery", slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, DeliveryResponse{Success: true, Earning: EarningEntityToJSON(earning)}, http.StatusOK)
}

// DeliveryHistory доставленные заказы курьера.
// @Summary      История доставок
// @Tags         delivery
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор курьера"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(DELIVERY)
// @Success      200  {array}   Order
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/delivery/history [get]
func (h *HTTPHandler) DeliveryHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orders, err := h.orders.DeliveryHistory(ctx, actor)
	if err != nil {
		h.writeError(w, r, err, "failed to get delivery history")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders, actor), http.StatusOK)
}
