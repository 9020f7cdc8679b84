package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// BillingService turns a stay into a settled bill.
type BillingService struct {
	bills    ports.BillRepository
	bookings ports.BookingRepository
	orders   ports.OrderRepository
	log      zerolog.Logger
}

func NewBillingService(bills ports.BillRepository, bookings ports.BookingRepository, orders ports.OrderRepository, log zerolog.Logger) *BillingService {
	return &BillingService{bills: bills, bookings: bookings, orders: orders, log: log}
}

// Issue builds a bill for a booking: the room charge plus every served,
// unbilled order for the room. The matched orders are marked billed in the
// same operation so they cannot appear on a second bill.
func (s *BillingService) Issue(ctx context.Context, input ports.IssueBillInput) (*domain.Bill, error) {
	booking, err := s.bookings.FindByReference(ctx, input.BookingReference)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingBooked || booking.Status == domain.BookingCancelled {
		return nil, domain.ErrInvalidBookingTransition
	}

	if existing, err := s.bills.FindByBooking(ctx, booking.ID); err == nil && existing != nil {
		return nil, domain.ErrBillExists
	} else if err != nil && !errors.Is(err, domain.ErrBillNotFound) {
		return nil, err
	}

	nights := booking.Nights()
	lines := []domain.BillLine{{
		Description: fmt.Sprintf("Room %s, %d night(s)", booking.RoomNumber, nights),
		Reference:   booking.Reference,
		Amount:      booking.NightlyRate * float64(nights),
	}}
	total := lines[0].Amount

	served, err := s.orders.List(ctx, ports.OrderFilter{
		RoomNumber: booking.RoomNumber,
		Status:     string(domain.OrderServed),
	})
	if err != nil {
		return nil, err
	}

	var orderNumbers []string
	for _, o := range served {
		lines = append(lines, domain.BillLine{
			Description: fmt.Sprintf("Order %s (%d item(s))", o.Number, len(o.Lines)),
			Reference:   o.Number,
			Amount:      o.Total,
		})
		total += o.Total
		orderNumbers = append(orderNumbers, o.Number)
	}

	now := time.Now().UTC()
	bill := &domain.Bill{
		Number:     newReference("BILL"),
		BookingID:  booking.ID,
		GuestID:    booking.GuestID,
		RoomNumber: booking.RoomNumber,
		Lines:      lines,
		Total:      total,
		Status:     domain.BillOpen,
		IssuedBy:   input.IssuedBy,
		IssuedAt:   now,
	}

	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, err
	}

	if len(orderNumbers) > 0 {
		if err := s.orders.MarkBilled(ctx, orderNumbers, now); err != nil {
			s.log.Error().Err(err).Str("bill", bill.Number).Msg("failed to mark orders billed")
			return nil, err
		}
	}

	s.log.Info().
		Str("bill", bill.Number).
		Str("booking", booking.Reference).
		Float64("total", total).
		Int("orders", len(orderNumbers)).
		Msg("bill issued")

	return bill, nil
}

// Settle marks a bill paid.
func (s *BillingService) Settle(ctx context.Context, number string) (*domain.Bill, error) {
	bill, err := s.bills.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if bill.Status == domain.BillPaid {
		return nil, domain.ErrBillAlreadyPaid
	}

	paid, err := s.bills.MarkPaid(ctx, number)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("bill", number).Float64("total", paid.Total).Msg("bill settled")
	return paid, nil
}

// Get retrieves a bill by number.
func (s *BillingService) Get(ctx context.Context, number string) (*domain.Bill, error) {
	return s.bills.FindByNumber(ctx, number)
}

// List returns bills, optionally filtered by settlement status.
func (s *BillingService) List(ctx context.Context, status string) ([]domain.Bill, error) {
	return s.bills.List(ctx, status)
}
