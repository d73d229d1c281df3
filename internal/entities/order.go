package entities

import "time"

type Status string

const (
	StatusCreated        Status = "CREATED"
	StatusAssigned       Status = "ASSIGNED"
	StatusAccepted       Status = "ACCEPTED"
	StatusReadyForPickup Status = "READY_FOR_PICKUP"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
)

// Статусы меняются только вперед, по одному шагу.
var nextStatus = map[Status]Status{
	StatusCreated:        StatusAssigned,
	StatusAssigned:       StatusAccepted,
	StatusAccepted:       StatusReadyForPickup,
	StatusReadyForPickup: StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

func CanTransition(from, to Status) bool {
	next, ok := nextStatus[from]
	return ok && next == to
}

func (s Status) Valid() bool {
	_, ok := nextStatus[s]
	return ok || s == StatusDelivered
}

// Active статусы заказа, в которых он висит на продавце или курьере.
var (
	SellerActiveStatuses   = []Status{StatusAssigned, StatusAccepted, StatusReadyForPickup}
	DeliveryActiveStatuses = []Status{StatusReadyForPickup, StatusOutForDelivery}
)

const PaymentCOD = "COD"

type Item struct {
	ProductID string
	Name      string
	Unit      string
	Quantity  int
	UnitPrice Amount
	LineTotal Amount
}

type Address struct {
	Address   string
	City      string
	House     string
	Area      string
	Pincode   string
	Latitude  float64
	Longitude float64
}

type Order struct {
	ID                string
	CustomerID        string
	SellerID          string
	DeliveryPartnerID string
	Status            Status
	DeliveryOTP       string
	PaymentMethod     string
	TotalAmount       Amount
	DeliveryFee       Amount
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// снапшоты, не меняются после создания заказа
	DeliveryAddress Address
	Items           []Item
}

func (o Order) Subtotal() Amount {
	return o.TotalAmount - o.DeliveryFee
}

// AwaitingSeller заказ создан, но продавец не подобран.
func (o Order) AwaitingSeller() bool {
	return o.Status == StatusCreated && o.SellerID == ""
}

// AwaitingPartner заказ готов к выдаче, но курьер не назначен.
func (o Order) AwaitingPartner() bool {
	return o.Status == StatusReadyForPickup && o.DeliveryPartnerID == ""
}

func ProductIDs(items []Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

// OrderFilter выборка заказов; пустые поля не участвуют в условии.
type OrderFilter struct {
	CustomerID        string
	SellerID          string
	DeliveryPartnerID string
	Statuses          []Status
	Limit             int
	OrderByUpdated    bool
}

// Transition условное обновление статуса: применяется только если заказ
// находится в From и принадлежит указанному продавцу/курьеру.
type Transition struct {
	OrderID   string
	From      Status
	To        Status
	SellerID  string
	PartnerID string
}
