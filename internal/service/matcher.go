package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
)

type SellerMatcher struct {
	catalog  CatalogRepo
	users    UserRepo
	calendar *Calendar
}

func NewSellerMatcher(catalog CatalogRepo, users UserRepo, calendar *Calendar) *SellerMatcher {
	return &SellerMatcher{catalog: catalog, users: users, calendar: calendar}
}

// Match подбирает продавца, способного собрать весь заказ. Выигрывает первый
// подходящий в порядке появления товаров в корзине. Ничего не изменяет.
func (m *SellerMatcher) Match(ctx context.Context, items []entities.Item) (entities.User, error) {
	ids := entities.ProductIDs(items)

	var products []entities.Product
	err := retryRead(ctx, func() (err error) {
		products, err = m.catalog.ProductsByIDs(ctx, ids)
		return err
	})
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to load products: %w", err)
	}

	return m.match(ctx, items, indexProducts(products))
}

func (m *SellerMatcher) match(ctx context.Context, items []entities.Item, products map[string]entities.Product) (entities.User, error) {
	sellerIDs := make([]string, 0, 1)
	seen := make(map[string]bool)
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok || seen[p.SellerID] {
			continue
		}
		seen[p.SellerID] = true
		sellerIDs = append(sellerIDs, p.SellerID)
	}
	if len(sellerIDs) == 0 {
		return entities.User{}, entities.ErrNoSellerAvailable
	}

	var sellers []entities.User
	err := retryRead(ctx, func() (err error) {
		sellers, err = m.users.UsersByIDs(ctx, sellerIDs)
		return err
	})
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to load sellers: %w", err)
	}

	byID := make(map[string]entities.User, len(sellers))
	for _, s := range sellers {
		byID[s.ID] = s
	}

	today := m.calendar.Today()
	for _, id := range sellerIDs {
		seller, ok := byID[id]
		if !ok || !seller.CanFulfill(today) {
			continue
		}
		if suppliesAll(seller.ID, items, products) {
			return seller, nil
		}
	}

	return entities.User{}, entities.ErrNoSellerAvailable
}

func suppliesAll(sellerID string, items []entities.Item, products map[string]entities.Product) bool {
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok || p.SellerID != sellerID || !p.CanSupply(it.Quantity) {
			return false
		}
	}
	return true
}

func indexProducts(products []entities.Product) map[string]entities.Product {
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}
