package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/jmoiron/sqlx/types"
)

var orderColumns = []string{
	"id", "customer_id", "seller_id", "delivery_partner_id", "status",
	"delivery_otp", "payment_method", "total_amount", "delivery_fee",
	"delivery_address", "created_at", "updated_at",
}

var itemColumns = []string{
	"order_id", "position", "product_id", "name", "unit",
	"quantity", "unit_price", "line_total",
}

var productColumns = []string{
	"id", "seller_id", "name", "unit", "status", "stock", "unit_price", "updated_at",
}

var userColumns = []string{
	"id", "role", "phone", "shop_name", "address", "city", "approval_status",
	"status", "is_available", "daily_stock_date", "created_at",
}

var earningColumns = []string{
	"id", "user_id", "role", "order_id", "amount", "status", "created_at",
}

type Order struct {
	ID                string         `db:"id"`
	CustomerID        string         `db:"customer_id"`
	SellerID          string         `db:"seller_id"`
	DeliveryPartnerID string         `db:"delivery_partner_id"`
	Status            string         `db:"status"`
	DeliveryOTP       string         `db:"delivery_otp"`
	PaymentMethod     string         `db:"payment_method"`
	TotalAmount       int64          `db:"total_amount"`
	DeliveryFee       int64          `db:"delivery_fee"`
	DeliveryAddress   types.JSONText `db:"delivery_address"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type Item struct {
	OrderID   string `db:"order_id"`
	Position  int    `db:"position"`
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Unit      string `db:"unit"`
	Quantity  int    `db:"quantity"`
	UnitPrice int64  `db:"unit_price"`
	LineTotal int64  `db:"line_total"`
}

// Address хранится в jsonb как есть
type Address struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	House     string  `json:"house,omitempty"`
	Area      string  `json:"area,omitempty"`
	Pincode   string  `json:"pincode,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Product struct {
	ID        string    `db:"id"`
	SellerID  string    `db:"seller_id"`
	Name      string    `db:"name"`
	Unit      string    `db:"unit"`
	Status    string    `db:"status"`
	Stock     int       `db:"stock"`
	UnitPrice int64     `db:"unit_price"`
	UpdatedAt time.Time `db:"updated_at"`
}

type User struct {
	ID             string    `db:"id"`
	Role           string    `db:"role"`
	Phone          string    `db:"phone"`
	ShopName       string    `db:"shop_name"`
	Address        string    `db:"address"`
	City           string    `db:"city"`
	ApprovalStatus string    `db:"approval_status"`
	Status         string    `db:"status"`
	IsAvailable    bool      `db:"is_available"`
	DailyStockDate string    `db:"daily_stock_date"`
	CreatedAt      time.Time `db:"created_at"`
}

type Earning struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"`
	OrderID   string    `db:"order_id"`
	Amount    int64     `db:"amount"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func AddressToJSON(a entities.Address) (types.JSONText, error) {
	data, err := json.Marshal(Address{
		Address:   a.Address,
		City:      a.City,
		House:     a.House,
		Area:      a.Area,
		Pincode:   a.Pincode,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal address: %w", err)
	}
	return types.JSONText(data), nil
}

func AddressToEntity(data types.JSONText) (entities.Address, error) {
	var a Address
	if len(data) > 0 {
		if err := data.Unmarshal(&a); err != nil {
			return entities.Address{}, fmt.Errorf("failed to unmarshal address: %w", err)
		}
	}
	return entities.Address{
		Address:   a.Address,
		City:      a.City,
		House:     a.House,
		Area:      a.Area,
		Pincode:   a.Pincode,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}, nil
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID: i.ProductID,
		Name:      i.Name,
		Unit:      i.Unit,
		Quantity:  i.Quantity,
		UnitPrice: entities.Amount(i.UnitPrice),
		LineTotal: entities.Amount(i.LineTotal),
	}
}

func OrderToEntity(o Order, items []Item) (entities.Order, error) {
	if !entities.Status(o.Status).Valid() {
		return entities.Order{}, fmt.Errorf("order %s has unknown status %q", o.ID, o.Status)
	}

	address, err := AddressToEntity(o.DeliveryAddress)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		SellerID:          o.SellerID,
		DeliveryPartnerID: o.DeliveryPartnerID,
		Status:            entities.Status(o.Status),
		DeliveryOTP:       o.DeliveryOTP,
		PaymentMethod:     o.PaymentMethod,
		TotalAmount:       entities.Amount(o.TotalAmount),
		DeliveryFee:       entities.Amount(o.DeliveryFee),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		DeliveryAddress:   address,
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order, nil
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:        p.ID,
		SellerID:  p.SellerID,
		Name:      p.Name,
		Unit:      p.Unit,
		Status:    entities.ProductStatus(p.Status),
		Stock:     p.Stock,
		UnitPrice: entities.Amount(p.UnitPrice),
		UpdatedAt: p.UpdatedAt,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:             u.ID,
		Role:           entities.Role(u.Role),
		Phone:          u.Phone,
		ShopName:       u.ShopName,
		Address:        u.Address,
		City:           u.City,
		ApprovalStatus: entities.ApprovalStatus(u.ApprovalStatus),
		Status:         entities.AccountStatus(u.Status),
		IsAvailable:    u.IsAvailable,
		DailyStockDate: u.DailyStockDate,
		CreatedAt:      u.CreatedAt,
	}
}

func EarningToEntity(e Earning) entities.Earning {
	return entities.Earning{
		ID:        e.ID,
		UserID:    e.UserID,
		Role:      entities.Role(e.Role),
		OrderID:   e.OrderID,
		Amount:    entities.Amount(e.Amount),
		Status:    entities.EarningStatus(e.Status),
		CreatedAt: e.CreatedAt,
	}
}
