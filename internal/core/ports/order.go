package ports

import (
	"context"
	"time"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

// OrderRepository defines the persistence interface for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByNumber(ctx context.Context, number string) (*domain.Order, error)
	// UpdateStatus atomically sets the status and appends a history entry.
	UpdateStatus(ctx context.Context, number string, status domain.OrderStatus, at time.Time, source string) error
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	// MarkBilled flips every listed order to billed in one write.
	MarkBilled(ctx context.Context, numbers []string, at time.Time) error
}

// OrderEventRepository is the audit trail of processed order events.
type OrderEventRepository interface {
	Insert(ctx context.Context, event *domain.OrderEvent) error
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	RoomNumber string
	CustomerID string
	Status     string
}

// OrderLineInput is one requested menu item within a new order.
type OrderLineInput struct {
	MenuItemID string
	Quantity   int
}

// PlaceOrderInput carries a new order. Exactly one of CustomerID or
// TableToken identifies the orderer.
type PlaceOrderInput struct {
	CustomerID string
	RoomNumber string
	TableToken string
	Lines      []OrderLineInput
	Notes      string
}

// OrderEventInput is a raw status update received from a staff device.
type OrderEventInput struct {
	OrderNumber string
	Status      string
	Timestamp   time.Time
	Source      string
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Place(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	Get(ctx context.Context, number string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
}

// OrderEventService processes order status events off the dispatcher.
type OrderEventService interface {
	Process(ctx context.Context, input OrderEventInput) error
}
