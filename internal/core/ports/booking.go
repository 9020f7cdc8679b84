package ports

import (
	"context"
	"time"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

// BookingRepository defines the persistence interface for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByReference(ctx context.Context, reference string) (*domain.Booking, error)
	// FindOverlapping returns bookings for the room whose stay intersects
	// [checkIn, checkOut) and whose status still occupies the room.
	FindOverlapping(ctx context.Context, roomNumber string, checkIn, checkOut time.Time) ([]domain.Booking, error)
	// UpdateStatus atomically sets the status and appends a history entry.
	UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus, at time.Time, notes string) error
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
}

// BookingFilter narrows a booking listing.
type BookingFilter struct {
	GuestID    string
	RoomNumber string
	Status     string
}

// CreateBookingInput carries all data needed to create a booking.
type CreateBookingInput struct {
	GuestID    string
	GuestName  string
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
}

// TransitionBookingInput carries a staff-initiated booking status change.
type TransitionBookingInput struct {
	Reference string
	Status    string
	Notes     string
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, reference string) (*domain.Booking, error)
	Transition(ctx context.Context, input TransitionBookingInput) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
}
