package entities

import "time"

type EventType string

const (
	EventOrderCreated    EventType = "ORDER_CREATED"
	EventOrderRematched  EventType = "ORDER_REMATCHED"
	EventOrderAccepted   EventType = "ORDER_ACCEPTED"
	EventOrderReady      EventType = "ORDER_READY"
	EventPartnerAssigned EventType = "PARTNER_ASSIGNED"
	EventPickupStarted   EventType = "PICKUP_STARTED"
	EventOrderDelivered  EventType = "ORDER_DELIVERED"
	EventStockConfirmed  EventType = "STOCK_CONFIRMED"
	EventStockAdjusted   EventType = "STOCK_ADJUSTED"
)

type Event struct {
	Type       EventType
	OrderID    string
	Actor      Actor
	OccurredAt time.Time
	Details    map[string]any
}
