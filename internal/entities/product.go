package entities

import "time"

type ProductStatus string

const (
	ProductApproved ProductStatus = "APPROVED"
	ProductPending  ProductStatus = "PENDING"
	ProductRejected ProductStatus = "REJECTED"
)

type Product struct {
	ID        string
	SellerID  string
	Name      string
	Unit      string
	Status    ProductStatus
	Stock     int
	UnitPrice Amount
	UpdatedAt time.Time
}

func (p Product) CanSupply(quantity int) bool {
	return p.Status == ProductApproved && p.Stock >= quantity
}

const LowStockThreshold = 10

type StockHealth string

const (
	StockOut     StockHealth = "out"
	StockLow     StockHealth = "low"
	StockHealthy StockHealth = "healthy"
)

func HealthOf(stock int) StockHealth {
	switch {
	case stock <= 0:
		return StockOut
	case stock <= LowStockThreshold:
		return StockLow
	default:
		return StockHealthy
	}
}

type MovementKind string

const (
	MovementDailySet       MovementKind = "DAILY_SET"
	MovementOrderDecrement MovementKind = "ORDER_DECREMENT"
	MovementAdjust         MovementKind = "ADJUST"
)

// StockMovement запись журнала остатков, пишется на каждое изменение stock.
type StockMovement struct {
	SellerID  string
	ProductID string
	Kind      MovementKind
	Delta     int
	NewStock  int
	OrderID   string
	CreatedAt time.Time
}

type StockLevel struct {
	ProductID string
	Stock     int
}
