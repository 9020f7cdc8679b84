package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of a food order.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderPreparing OrderStatus = "preparing"
	OrderServed    OrderStatus = "served"
	OrderBilled    OrderStatus = "billed"
	OrderCancelled OrderStatus = "cancelled"
)

// validOrderTransitions defines the allowed state machine transitions.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPlaced:    {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderServed, OrderCancelled},
	OrderServed:    {OrderBilled},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidTableToken = errors.New("invalid table token")
var ErrInvalidOrderTransition = errors.New("invalid order status transition")
var ErrEmptyOrder = errors.New("order has no items")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderLine is one menu item and quantity within an order.
type OrderLine struct {
	MenuItemID string  `json:"menu_item_id" bson:"menu_item_id"`
	Name       string  `json:"name" bson:"name"`
	UnitPrice  float64 `json:"unit_price" bson:"unit_price"`
	Quantity   int     `json:"quantity" bson:"quantity"`
}

// OrderHistoryEntry records a single status transition on an order.
type OrderHistoryEntry struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Source    string      `json:"source,omitempty" bson:"source,omitempty"`
}

// Order is a food order attributed to a room, placed either by a logged-in
// customer or anonymously through a table token.
type Order struct {
	ID            string              `json:"id" bson:"_id,omitempty"`
	Number        string              `json:"number" bson:"number"`
	RoomNumber    string              `json:"room_number" bson:"room_number"`
	CustomerID    string              `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Lines         []OrderLine         `json:"lines" bson:"lines"`
	Total         float64             `json:"total" bson:"total"`
	Status        OrderStatus         `json:"status" bson:"status"`
	StatusHistory []OrderHistoryEntry `json:"status_history" bson:"status_history"`
	Notes         string              `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
}

// OrderEvent represents a status update received from a staff device.
type OrderEvent struct {
	OrderNumber string
	Status      OrderStatus
	Timestamp   time.Time
	Source      string
}
