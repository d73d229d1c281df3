package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/green-basket/internal/middleware"
	"github.com/SergeyBogomolovv/green-basket/pkg/utils"
)

// SellerOrders возвращает активные заказы продавца.
// @Summary      Заказы продавца
// @Description  Заказы в статусах ASSIGNED, ACCEPTED и READY_FOR_PICKUP
// @Tags         seller
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор продавца"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(SELLER)
// @Success      200  {array}   Order
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/seller/orders [get]
func (h *HTTPHandler) SellerOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orders, err := h.orders.SellerOrders(ctx, actor)
	if err != nil {
		h.writeError(w, r, err, "failed to list seller orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders, actor), http.StatusOK)
}

// AcceptOrder продавец принимает назначенный заказ, остатки списываются.
// @Summary      Принять заказ
// @Tags         seller
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор продавца"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(SELLER)
// @Param        order_id      path      string  true  "Идентификатор заказа"
// @Success      200  {object}  utils.SuccessResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в статусе ASSIGNED"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/seller/orders/{order_id}/accept [post]
func (h *HTTPHandler) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orderID, ok := h.pathParam(w, r, "order_id")
	if !ok {
		return
	}

	if err := h.orders.AcceptOrder(ctx, actor, orderID); err != nil {
		h.writeError(w, r, err, "failed to accept order", slog.String("order_id", orderID))
		return
	}

	utils.WriteSuccess(w, "")
}

// MarkReady заказ собран, подбирается курьер.
// @Summary      Заказ готов к выдаче
// @Description  Если свободного курьера нет, заказ остается в READY_FOR_PICKUP с предупреждением
// @Tags         seller
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор продавца"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(SELLER)
// @Param        order_id      path      string  true  "Идентификатор заказа"
// @Success      200  {object}  ReadyResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в статусе ACCEPTED"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/seller/orders/{order_id}/ready [post]
func (h *HTTPHandler) MarkReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	orderID, ok := h.pathParam(w, r, "order_id")
	if !ok {
		return
	}

	res, err := h.orders.MarkReady(ctx, actor, orderID)
	if err != nil {
		h.writeError(w, r, err, "failed to mark order ready", slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, ReadyResponse{Success: true, PartnerID: res.PartnerID, Warning: res.Warning}, http.StatusOK)
}

// StockView остатки продавца.
// @Summary      Остатки
// @Tags         seller
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор продавца"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(SELLER)
// @Success      200  {object}  StockResponse
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/seller/stock [get]
func (h *HTTPHandler) StockView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	view, err := h.stock.StockView(ctx, actor)
	if err != nil {
		h.writeError(w, r, err, "failed to get stock")
		return
	}

	utils.WriteJSON(w, StockViewToJSON(view), http.StatusOK)
}

// ConfirmDailyStock ежедневное подтверждение остатков.
// @Summary      Подтвердить остатки на сегодня
// @Description  Без подтверждения продавец не получает новые заказы
// @Tags         seller
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID    header    string             true  "Идентификатор продавца"
// @Param        X-Actor-Role  header    string             true  "Роль"  Enums(SELLER)
// @Param        request       body      DailyStockRequest  true  "Остатки"
// @Success      200  {object}  DailyStockResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/seller/stock/daily-confirm [post]
func (h *HTTPHandler) ConfirmDailyStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	var req DailyStockRequest
	if !h.decode(w, r, &req) {
		return
	}

	levels, err := h.stock.ConfirmDailyStock(ctx, actor, StockLevelsJSONToEntity(req.Items))
	if err != nil {
		h.writeError(w, r, err, "failed to confirm daily stock")
		return
	}

	utils.WriteJSON(w, DailyStockResponse{Success: true, Items: StockLevelsEntityToJSON(levels)}, http.StatusOK)
}

// AdjustStock корректировка остатка.
// @Summary      Изменить остаток на единицу
// @Tags         seller
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID    header    string              true  "Идентификатор продавца"
// @Param        X-Actor-Role  header    string              true  "Роль"  Enums(SELLER)
// @Param        product_id    path      string              true  "Идентификатор товара"
// @Param        request       body      AdjustStockRequest  true  "+1 или -1"
// @Success      200  {object}  AdjustStockResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/seller/stock/{product_id}/adjust [patch]
func (h *HTTPHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	productID, ok := h.pathParam(w, r, "product_id")
	if !ok {
		return
	}

	var req AdjustStockRequest
	if !h.decode(w, r, &req) {
		return
	}

	stock, err := h.stock.AdjustStock(ctx, actor, productID, req.Delta)
	if err != nil {
		h.writeError(w, r, err, "failed to adjust stock", slog.String("product_id", productID))
		return
	}

	utils.WriteJSON(w, AdjustStockResponse{ProductID: productID, Stock: stock}, http.StatusOK)
}

// Earnings сводка начислений продавца или курьера.
// @Summary      Начисления
// @Tags         seller, delivery
// @Produce      json
// @Param        X-Actor-ID    header    string  true  "Идентификатор участника"
// @Param        X-Actor-Role  header    string  true  "Роль"  Enums(SELLER, DELIVERY)
// @Success      200  {object}  EarningsResponse
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/seller/earnings [get]
// @Router       /api/delivery/earnings [get]
func (h *HTTPHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.ActorFrom(ctx)

	summary, err := h.earnings.EarningsSummary(ctx, actor)
	if err != nil {
		h.writeError(w, r, err, "failed to get earnings")
		return
	}

	utils.WriteJSON(w, SummaryEntityToJSON(summary), http.StatusOK)
}
