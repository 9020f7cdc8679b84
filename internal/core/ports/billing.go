package ports

import (
	"context"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

// BillRepository defines the persistence interface for bills.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	FindByNumber(ctx context.Context, number string) (*domain.Bill, error)
	FindByBooking(ctx context.Context, bookingID string) (*domain.Bill, error)
	MarkPaid(ctx context.Context, number string) (*domain.Bill, error)
	List(ctx context.Context, status string) ([]domain.Bill, error)
}

// IssueBillInput carries a cashier's request to bill a booking.
type IssueBillInput struct {
	BookingReference string
	IssuedBy         string
}

// BillingService defines use-case operations for billing.
type BillingService interface {
	// Issue builds a bill from the booking's room charge plus every served,
	// unbilled order for the room, and marks those orders billed.
	Issue(ctx context.Context, input IssueBillInput) (*domain.Bill, error)
	Settle(ctx context.Context, number string) (*domain.Bill, error)
	Get(ctx context.Context, number string) (*domain.Bill, error)
	List(ctx context.Context, status string) ([]domain.Bill, error)
}
