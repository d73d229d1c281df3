package handler

import (
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
)

// Address адрес доставки
type Address struct {
	Address   string  `json:"address" validate:"required"`
	City      string  `json:"city" validate:"required"`
	House     string  `json:"house,omitempty"`
	Area      string  `json:"area,omitempty"`
	Pincode   string  `json:"pincode,omitempty" validate:"omitempty,numeric"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// CheckoutItem позиция корзины
type CheckoutItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CheckoutRequest оформление заказа, оплата всегда наличными при получении
type CheckoutRequest struct {
	Items           []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress Address        `json:"delivery_address"`
}

// Item позиция заказа, снапшот цены и названия на момент оформления
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  int             `json:"quantity"`
	UnitPrice entities.Amount `json:"unit_price" swaggertype:"number"`
	LineTotal entities.Amount `json:"line_total" swaggertype:"number"`
}

// Order заказ
type Order struct {
	ID                string          `json:"order_id"`
	CustomerID        string          `json:"customer_id"`
	SellerID          string          `json:"seller_id,omitempty"`
	DeliveryPartnerID string          `json:"delivery_partner_id,omitempty"`
	Status            string          `json:"status"`
	DeliveryOTP       string          `json:"delivery_otp,omitempty"`
	PaymentMethod     string          `json:"payment_method"`
	Subtotal          entities.Amount `json:"subtotal" swaggertype:"number"`
	DeliveryFee       entities.Amount `json:"delivery_fee" swaggertype:"number"`
	TotalAmount       entities.Amount `json:"total_amount" swaggertype:"number"`
	DeliveryAddress   Address         `json:"delivery_address"`
	Items             []Item          `json:"items"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CheckoutResponse созданный заказ; warning если продавец пока не найден
type CheckoutResponse struct {
	Order   Order  `json:"order"`
	Warning string `json:"warning,omitempty"`
}

// ShortageItem позиция, которой не хватает на складе
type ShortageItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// ShortageResponse отказ в оформлении из-за нехватки остатков
type ShortageResponse struct {
	Message   string         `json:"message"`
	Shortages []ShortageItem `json:"shortages"`
}

// ReadyResponse результат передачи заказа курьеру
type ReadyResponse struct {
	Success   bool   `json:"success"`
	PartnerID string `json:"delivery_partner_id,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

// StockItem остаток товара продавца
type StockItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Stock     int             `json:"stock"`
	UnitPrice entities.Amount `json:"unit_price" swaggertype:"number"`
	Health    string          `json:"health" enums:"out,low,healthy"`
}

// StockResponse остатки продавца на сегодня
type StockResponse struct {
	Date           string      `json:"date"`
	ConfirmedToday bool        `json:"confirmed_today"`
	Items          []StockItem `json:"items"`
}

// StockLevel новый остаток товара
type StockLevel struct {
	ProductID string `json:"product_id" validate:"required"`
	Stock     int    `json:"stock" validate:"gte=0"`
}

// DailyStockRequest ежедневное подтверждение остатков
type DailyStockRequest struct {
	Items []StockLevel `json:"items" validate:"required,min=1,dive"`
}

// DailyStockResponse сохраненные остатки
type DailyStockResponse struct {
	Success bool         `json:"success"`
	Items   []StockLevel `json:"items"`
}

// AdjustStockRequest корректировка остатка на одну единицу
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"oneof=-1 1"`
}

// AdjustStockResponse остаток после корректировки
type AdjustStockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}

// Earning начисление за доставленный заказ
type Earning struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Role      string          `json:"role"`
	Amount    entities.Amount `json:"amount" swaggertype:"number"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// EarningsResponse сводка начислений
type EarningsResponse struct {
	Total        entities.Amount `json:"total" swaggertype:"number"`
	Paid         entities.Amount `json:"paid" swaggertype:"number"`
	Pending      entities.Amount `json:"pending" swaggertype:"number"`
	Transactions []Earning       `json:"transactions"`
}

// AvailabilityRequest выход на линию или уход с нее
type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// Seller продавец, у которого курьер забирает заказ
type Seller struct {
	ID       string `json:"id"`
	ShopName string `json:"shop_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
}

// ActiveOrderResponse текущий заказ курьера, order = null если заказа нет
type ActiveOrderResponse struct {
	Order  *Order  `json:"order"`
	Seller *Seller `json:"seller,omitempty"`
}

// VerifyOTPRequest код, который покупатель называет курьеру
type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// DeliveryResponse подтвержденная доставка и начисление курьеру
type DeliveryResponse struct {
	Success bool    `json:"success"`
	Earning Earning `json:"earning"`
}

// ReconcileResponse результат повторного подбора
type ReconcileResponse struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	SellerID  string `json:"seller_id,omitempty"`
	PartnerID string `json:"delivery_partner_id,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

// HealthResponse состояние сервиса
type HealthResponse struct {
	Status string `json:"status"`
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		Address:   a.Address,
		City:      a.City,
		House:     a.House,
		Area:      a.Area,
		Pincode:   a.Pincode,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Address:   a.Address,
		City:      a.City,
		House:     a.House,
		Area:      a.Area,
		Pincode:   a.Pincode,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}

func CheckoutJSONToRequest(c CheckoutRequest) service.CheckoutRequest {
	lines := make([]service.CheckoutLine, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, service.CheckoutLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return service.CheckoutRequest{
		Items:           lines,
		DeliveryAddress: AddressJSONToEntity(c.DeliveryAddress),
	}
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		ProductID: i.ProductID,
		Name:      i.Name,
		Unit:      i.Unit,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		LineTotal: i.LineTotal,
	}
}

// OrderEntityToJSON код доставки показывается только покупателю, которому он нужен у двери.
func OrderEntityToJSON(o entities.Order, viewer entities.Actor) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	res := Order{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		SellerID:          o.SellerID,
		DeliveryPartnerID: o.DeliveryPartnerID,
		Status:            string(o.Status),
		PaymentMethod:     o.PaymentMethod,
		Subtotal:          o.Subtotal(),
		DeliveryFee:       o.DeliveryFee,
		TotalAmount:       o.TotalAmount,
		DeliveryAddress:   AddressEntityToJSON(o.DeliveryAddress),
		Items:             items,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	if viewer.Role == entities.RoleCustomer && viewer.ID == o.CustomerID {
		res.DeliveryOTP = o.DeliveryOTP
	}
	return res
}

func OrdersEntityToJSON(orders []entities.Order, viewer entities.Actor) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o, viewer))
	}
	return res
}

func ShortageEntityToJSON(e *entities.ShortageError) ShortageResponse {
	res := ShortageResponse{
		Message:   "insufficient stock",
		Shortages: make([]ShortageItem, 0, len(e.Shortages)),
	}
	for _, s := range e.Shortages {
		res.Shortages = append(res.Shortages, ShortageItem{
			ProductID: s.ProductID,
			Name:      s.Name,
			Requested: s.Requested,
			Available: s.Available,
		})
	}
	return res
}

func StockViewToJSON(v service.StockView) StockResponse {
	items := make([]StockItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, StockItem{
			ProductID: it.ID,
			Name:      it.Name,
			Unit:      it.Unit,
			Stock:     it.Stock,
			UnitPrice: it.UnitPrice,
			Health:    string(it.Health),
		})
	}
	return StockResponse{Date: v.Date, ConfirmedToday: v.ConfirmedToday, Items: items}
}

func StockLevelsJSONToEntity(levels []StockLevel) []entities.StockLevel {
	res := make([]entities.StockLevel, 0, len(levels))
	for _, l := range levels {
		res = append(res, entities.StockLevel{ProductID: l.ProductID, Stock: l.Stock})
	}
	return res
}

func StockLevelsEntityToJSON(levels []entities.StockLevel) []StockLevel {
	res := make([]StockLevel, 0, len(levels))
	for _, l := range levels {
		res = append(res, StockLevel{ProductID: l.ProductID, Stock: l.Stock})
	}
	return res
}

func EarningEntityToJSON(e entities.Earning) Earning {
	return Earning{
		ID:        e.ID,
		OrderID:   e.OrderID,
		Role:      string(e.Role),
		Amount:    e.Amount,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

func SummaryEntityToJSON(s entities.EarningsSummary) EarningsResponse {
	txs := make([]Earning, 0, len(s.Transactions))
	for _, e := range s.Transactions {
		txs = append(txs, EarningEntityToJSON(e))
	}
	return EarningsResponse{Total: s.Total, Paid: s.Paid, Pending: s.Pending, Transactions: txs}
}

func SellerEntityToJSON(u entities.User) *Seller {
	return &Seller{
		ID:       u.ID,
		ShopName: u.ShopName,
		Phone:    u.Phone,
		Address:  u.Address,
		City:     u.City,
	}
}

func ReconcileResultToJSON(r service.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		OrderID:   r.OrderID,
		Status:    string(r.Status),
		SellerID:  r.SellerID,
		PartnerID: r.PartnerID,
		Warning:   r.Warning,
	}
}
