package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	return r.selectProducts(ctx, query, args...)
}

func (r *postgresRepo) SellerProducts(ctx context.Context, sellerID string) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"seller_id": sellerID, "status": string(entities.ProductApproved)}).
		OrderBy("name", "id").
		MustSql()

	return r.selectProducts(ctx, query, args...)
}

func (r *postgresRepo) selectProducts(ctx context.Context, query string, args ...any) ([]entities.Product, error) {
	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

// DecrementStock списывает qty одним выражением, остаток не опускается ниже нуля.
func (r *postgresRepo) DecrementStock(ctx context.Context, orderID, sellerID, productID string, qty int) (int, error) {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("GREATEST(stock - ?, 0)", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID, "seller_id": sellerID}).
		Suffix("RETURNING stock").
		MustSql()

	stock, err := r.updateStock(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	err = r.logMovement(ctx, entities.StockMovement{
		SellerID:  sellerID,
		ProductID: productID,
		Kind:      entities.MovementOrderDecrement,
		Delta:     -qty,
		NewStock:  stock,
		OrderID:   orderID,
	})
	return stock, err
}

// SetStock перезаписывает остатки продавца значениями ежедневного подтверждения.
func (r *postgresRepo) SetStock(ctx context.Context, sellerID string, levels []entities.StockLevel) ([]entities.StockLevel, error) {
	result := make([]entities.StockLevel, 0, len(levels))
	for _, l := range levels {
		query, args := r.qb.Update("products").
			Set("stock", l.Stock).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": l.ProductID, "seller_id": sellerID}).
			Suffix("RETURNING stock").
			MustSql()

		stock, err := r.updateStock(ctx, query, args...)
		if err != nil {
			return nil, err
		}

		err = r.logMovement(ctx, entities.StockMovement{
			SellerID:  sellerID,
			ProductID: l.ProductID,
			Kind:      entities.MovementDailySet,
			NewStock:  stock,
		})
		if err != nil {
			return nil, err
		}

		result = append(result, entities.StockLevel{ProductID: l.ProductID, Stock: stock})
	}
	return result, nil
}

func (r *postgresRepo) AdjustStock(ctx context.Context, sellerID, productID string, delta int) (int, error) {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("GREATEST(stock + ?, 0)", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID, "seller_id": sellerID}).
		Suffix("RETURNING stock").
		MustSql()

	stock, err := r.updateStock(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	err = r.logMovement(ctx, entities.StockMovement{
		SellerID:  sellerID,
		ProductID: productID,
		Kind:      entities.MovementAdjust,
		Delta:     delta,
		NewStock:  stock,
	})
	return stock, err
}

func (r *postgresRepo) updateStock(ctx context.Context, query string, args ...any) (int, error) {
	var stock int
	err := r.getContext(ctx, &stock, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrProductNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update stock: %w", err)
	}
	return stock, nil
}

func (r *postgresRepo) logMovement(ctx context.Context, m entities.StockMovement) error {
	query, args := r.qb.Insert("stock_movements").
		Columns("seller_id", "product_id", "kind", "delta", "new_stock", "order_id").
		Values(m.SellerID, m.ProductID, string(m.Kind), m.Delta, m.NewStock, m.OrderID).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert stock movement: %w", err)
	}
	return nil
}
