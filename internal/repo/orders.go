package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

const maxListLimit = 1000

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	address, err := AddressToJSON(o.DeliveryAddress)
	if err != nil {
		return err
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.CustomerID, o.SellerID, o.DeliveryPartnerID, string(o.Status),
			o.DeliveryOTP, o.PaymentMethod, int64(o.TotalAmount), int64(o.DeliveryFee),
			address, o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return entities.ErrOrderExists
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for i, it := range o.Items {
		q = q.Values(
			o.ID, i, it.ProductID, it.Name, it.Unit,
			it.Quantity, int64(it.UnitPrice), int64(it.LineTotal),
		)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, []string{orderID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[orderID])
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).From("orders")

	if f.CustomerID != "" {
		q = q.Where(sq.Eq{"customer_id": f.CustomerID})
	}
	if f.SellerID != "" {
		q = q.Where(sq.Eq{"seller_id": f.SellerID})
	}
	if f.DeliveryPartnerID != "" {
		q = q.Where(sq.Eq{"delivery_partner_id": f.DeliveryPartnerID})
	}
	if len(f.Statuses) > 0 {
		q = q.Where(sq.Eq{"status": statusStrings(f.Statuses)})
	}
	if f.OrderByUpdated {
		q = q.OrderBy("updated_at DESC")
	} else {
		q = q.OrderBy("created_at DESC")
	}

	return r.listOrders(ctx, q.Limit(listLimit(f.Limit)))
}

// ListDegraded заказы, ожидающие ручного или внешнего разбора: без продавца или без курьера.
func (r *postgresRepo) ListDegraded(ctx context.Context, limit int) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Or{
			sq.Eq{"status": string(entities.StatusCreated), "seller_id": ""},
			sq.Eq{"status": string(entities.StatusReadyForPickup), "delivery_partner_id": ""},
		}).
		OrderBy("created_at ASC").
		Limit(listLimit(limit))

	return r.listOrders(ctx, q)
}

func (r *postgresRepo) listOrders(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	items, err := r.orderItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order, err := OrderToEntity(o, items[o.ID])
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	result := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		result[it.OrderID] = append(result[it.OrderID], it)
	}
	return result, nil
}

// Transition переводит заказ в t.To только если он сейчас в t.From.
// Ноль затронутых строк означает, что условие не выполнено: ErrPreconditionFailed.
func (r *postgresRepo) Transition(ctx context.Context, t entities.Transition) error {
	if !entities.CanTransition(t.From, t.To) {
		return fmt.Errorf("%w: %s -> %s is not a valid transition", entities.ErrPreconditionFailed, t.From, t.To)
	}

	where := sq.Eq{"id": t.OrderID, "status": string(t.From)}
	if t.SellerID != "" {
		where["seller_id"] = t.SellerID
	}
	if t.PartnerID != "" {
		where["delivery_partner_id"] = t.PartnerID
	}

	query, args := r.qb.Update("orders").
		Set("status", string(t.To)).
		Set("updated_at", sq.Expr("now()")).
		Where(where).
		MustSql()

	ok, err := r.affectedOne(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: order %s is not %s", entities.ErrPreconditionFailed, t.OrderID, t.From)
	}
	return nil
}

func (r *postgresRepo) AssignSeller(ctx context.Context, orderID, sellerID string) error {
	query, args := r.qb.Update("orders").
		Set("seller_id", sellerID).
		Set("status", string(entities.StatusAssigned)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "status": string(entities.StatusCreated), "seller_id": ""}).
		MustSql()

	ok, err := r.affectedOne(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to assign seller: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: order %s already has a seller", entities.ErrPreconditionFailed, orderID)
	}
	return nil
}

func (r *postgresRepo) BindPartner(ctx context.Context, orderID, partnerID, otp string) error {
	query, args := r.qb.Update("orders").
		Set("delivery_partner_id", partnerID).
		Set("delivery_otp", otp).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":                  orderID,
			"status":              string(entities.StatusReadyForPickup),
			"delivery_partner_id": "",
		}).
		MustSql()

	ok, err := r.affectedOne(ctx, query, args...)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: partner %s", entities.ErrPartnerBusy, partnerID)
	}
	if err != nil {
		return fmt.Errorf("failed to bind partner: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: order %s already has a partner", entities.ErrPreconditionFailed, orderID)
	}
	return nil
}

func statusStrings(statuses []entities.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func listLimit(limit int) uint64 {
	if limit <= 0 || limit > maxListLimit {
		return maxListLimit
	}
	return uint64(limit)
}
