package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// BookingService implements the booking use cases.
type BookingService struct {
	bookings ports.BookingRepository
	rooms    ports.RoomRepository
	log      zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, rooms ports.RoomRepository, log zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, rooms: rooms, log: log}
}

// Create books a room for a guest. The room must exist, be available, and
// have no overlapping active booking.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if !input.CheckOut.After(input.CheckIn) {
		return nil, domain.ErrRoomUnavailable
	}

	room, err := s.rooms.FindByNumber(ctx, input.RoomNumber)
	if err != nil {
		return nil, err
	}
	if !room.Available || input.Guests > room.Capacity {
		return nil, domain.ErrRoomUnavailable
	}

	overlapping, err := s.bookings.FindOverlapping(ctx, input.RoomNumber, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, domain.ErrRoomUnavailable
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		Reference:   newReference("BK"),
		GuestID:     input.GuestID,
		GuestName:   input.GuestName,
		RoomNumber:  input.RoomNumber,
		CheckIn:     input.CheckIn,
		CheckOut:    input.CheckOut,
		Guests:      input.Guests,
		NightlyRate: room.NightlyRate,
		Status:      domain.BookingBooked,
		StatusHistory: []domain.BookingHistoryEntry{
			{Status: domain.BookingBooked, Timestamp: now},
		},
		CreatedAt: now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.Error().Err(err).Str("room", input.RoomNumber).Msg("failed to create booking")
		return nil, err
	}

	s.log.Info().Str("reference", booking.Reference).Str("room", booking.RoomNumber).Msg("booking created")
	return booking, nil
}

// Get retrieves a booking by reference.
func (s *BookingService) Get(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.FindByReference(ctx, reference)
}

// Transition moves a booking through its lifecycle (check-in, check-out,
// cancel) after validating the state machine.
func (s *BookingService) Transition(ctx context.Context, input ports.TransitionBookingInput) (*domain.Booking, error) {
	next := domain.BookingStatus(input.Status)

	booking, err := s.bookings.FindByReference(ctx, input.Reference)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidBookingTransition
	}

	now := time.Now().UTC()
	if err := s.bookings.UpdateStatus(ctx, input.Reference, next, now, input.Notes); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("reference", input.Reference).
		Str("from", string(booking.Status)).
		Str("to", string(next)).
		Msg("booking transitioned")

	return s.bookings.FindByReference(ctx, input.Reference)
}

// List returns bookings matching the filter.
func (s *BookingService) List(ctx context.Context, filter ports.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, filter)
}
