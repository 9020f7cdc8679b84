package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubRoomRepo struct {
	byNumber map[string]*domain.Room
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{byNumber: make(map[string]*domain.Room)}
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if _, exists := r.byNumber[room.Number]; exists {
		return nil, domain.ErrRoomExists
	}
	r.byNumber[room.Number] = room
	return room, nil
}

func (r *stubRoomRepo) FindByNumber(_ context.Context, number string) (*domain.Room, error) {
	room, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (r *stubRoomRepo) Update(_ context.Context, number string, update ports.RoomUpdate) (*domain.Room, error) {
	room, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	if update.Available != nil {
		room.Available = *update.Available
	}
	if update.NightlyRate != nil {
		room.NightlyRate = *update.NightlyRate
	}
	return room, nil
}

func (r *stubRoomRepo) Delete(_ context.Context, number string) error {
	if _, ok := r.byNumber[number]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(r.byNumber, number)
	return nil
}

func (r *stubRoomRepo) List(_ context.Context, onlyAvailable bool) ([]domain.Room, error) {
	var out []domain.Room
	for _, room := range r.byNumber {
		if !onlyAvailable || room.Available {
			out = append(out, *room)
		}
	}
	return out, nil
}

type stubBookingRepo struct {
	byReference map[string]*domain.Booking
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byReference: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	booking.ID = booking.Reference
	r.byReference[booking.Reference] = booking
	return nil
}

func (r *stubBookingRepo) FindByReference(_ context.Context, reference string) (*domain.Booking, error) {
	booking, ok := r.byReference[reference]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (r *stubBookingRepo) FindOverlapping(_ context.Context, roomNumber string, checkIn, checkOut time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range r.byReference {
		if b.RoomNumber != roomNumber {
			continue
		}
		if b.Status == domain.BookingCancelled || b.Status == domain.BookingCheckedOut {
			continue
		}
		if b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, reference string, status domain.BookingStatus, at time.Time, notes string) error {
	booking, ok := r.byReference[reference]
	if !ok {
		return domain.ErrBookingNotFound
	}
	booking.Status = status
	booking.StatusHistory = append(booking.StatusHistory, domain.BookingHistoryEntry{
		Status:    status,
		Timestamp: at,
		Notes:     notes,
	})
	return nil
}

func (r *stubBookingRepo) List(_ context.Context, filter ports.BookingFilter) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range r.byReference {
		if filter.GuestID != "" && b.GuestID != filter.GuestID {
			continue
		}
		if filter.RoomNumber != "" && b.RoomNumber != filter.RoomNumber {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func seededRoomRepo(number string, rate float64, capacity int, available bool) *stubRoomRepo {
	repo := newStubRoomRepo()
	repo.byNumber[number] = &domain.Room{
		Number:      number,
		Type:        domain.RoomStandard,
		NightlyRate: rate,
		Capacity:    capacity,
		Available:   available,
	}
	return repo
}

func bookingInput(room string, guests int, from, nights int) ports.CreateBookingInput {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return ports.CreateBookingInput{
		GuestID:    "u1",
		GuestName:  "Dana Reyes",
		RoomNumber: room,
		CheckIn:    base.AddDate(0, 0, from),
		CheckOut:   base.AddDate(0, 0, from+nights),
		Guests:     guests,
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestBookingService_Create_Success(t *testing.T) {
	rooms := seededRoomRepo("101", 120, 2, true)
	bookings := newStubBookingRepo()
	svc := NewBookingService(bookings, rooms, zerolog.Nop())

	booking, err := svc.Create(context.Background(), bookingInput("101", 2, 0, 3))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if booking.Reference == "" {
		t.Error("expected a booking reference")
	}
	if booking.Status != domain.BookingBooked {
		t.Errorf("expected booked status, got %s", booking.Status)
	}
	if booking.NightlyRate != 120 {
		t.Errorf("expected rate snapshot 120, got %v", booking.NightlyRate)
	}
	if len(booking.StatusHistory) != 1 {
		t.Errorf("expected one history entry, got %d", len(booking.StatusHistory))
	}
}

func TestBookingService_Create_RoomNotFound(t *testing.T) {
	svc := NewBookingService(newStubBookingRepo(), newStubRoomRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), bookingInput("999", 1, 0, 1))
	if !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestBookingService_Create_RoomUnavailable(t *testing.T) {
	rooms := seededRoomRepo("101", 120, 2, false)
	svc := NewBookingService(newStubBookingRepo(), rooms, zerolog.Nop())

	_, err := svc.Create(context.Background(), bookingInput("101", 1, 0, 1))
	if !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}
}

func TestBookingService_Create_OverCapacity(t *testing.T) {
	rooms := seededRoomRepo("101", 120, 2, true)
	svc := NewBookingService(newStubBookingRepo(), rooms, zerolog.Nop())

	_, err := svc.Create(context.Background(), bookingInput("101", 4, 0, 1))
	if !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}
}

func TestBookingService_Create_InvertedDates(t *testing.T) {
	rooms := seededRoomRepo("101", 120, 2, true)
	svc := NewBookingService(newStubBookingRepo(), rooms, zerolog.Nop())

	input := bookingInput("101", 1, 3, 2)
	input.CheckIn, input.CheckOut = input.CheckOut, input.CheckIn
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}
}

func TestBookingService_Create_OverlapRejected(t *testing.T) {
	rooms := seededRoomRepo("101", 120, 2, true)
	bookings := newStubBookingRepo()
	svc := NewBookingService(bookings, rooms, zerolog.Nop())

	if _, err := svc.Create(context.Background(), bookingInput("101", 1, 0, 3)); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Overlaps the middle of the first stay.
	_, err := svc.Create(context.Background(), bookingInput("101", 1, 1, 3))
	if !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}

	// Back to back is fine: checkout day equals the next check-in.
	if _, err := svc.Create(context.Background(), bookingInput("101", 1, 3, 2)); err != nil {
		t.Fatalf("back-to-back booking failed: %v", err)
	}
}

func TestBookingService_Transition_CheckInThenOut(t *testing.T) {
	rooms := seededRoomRepo("101", 120, 2, true)
	bookings := newStubBookingRepo()
	svc := NewBookingService(bookings, rooms, zerolog.Nop())

	booking, err := svc.Create(context.Background(), bookingInput("101", 1, 0, 2))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	checkedIn, err := svc.Transition(context.Background(), ports.TransitionBookingInput{
		Reference: booking.Reference,
		Status:    string(domain.BookingCheckedIn),
	})
	if err != nil {
		t.Fatalf("check-in failed: %v", err)
	}
	if checkedIn.Status != domain.BookingCheckedIn {
		t.Errorf("expected checked_in, got %s", checkedIn.Status)
	}

	checkedOut, err := svc.Transition(context.Background(), ports.TransitionBookingInput{
		Reference: booking.Reference,
		Status:    string(domain.BookingCheckedOut),
	})
	if err != nil {
		t.Fatalf("check-out failed: %v", err)
	}
	if len(checkedOut.StatusHistory) != 3 {
		t.Errorf("expected three history entries, got %d", len(checkedOut.StatusHistory))
	}
}

func TestBookingService_Transition_Invalid(t *testing.T) {
	rooms := seededRoomRepo("101", 120, 2, true)
	bookings := newStubBookingRepo()
	svc := NewBookingService(bookings, rooms, zerolog.Nop())

	booking, err := svc.Create(context.Background(), bookingInput("101", 1, 0, 2))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// booked straight to checked_out skips check-in.
	_, err = svc.Transition(context.Background(), ports.TransitionBookingInput{
		Reference: booking.Reference,
		Status:    string(domain.BookingCheckedOut),
	})
	if !errors.Is(err, domain.ErrInvalidBookingTransition) {
		t.Fatalf("expected ErrInvalidBookingTransition, got %v", err)
	}
}

func TestBookingService_Transition_NotFound(t *testing.T) {
	svc := NewBookingService(newStubBookingRepo(), newStubRoomRepo(), zerolog.Nop())

	_, err := svc.Transition(context.Background(), ports.TransitionBookingInput{
		Reference: "BK-MISSING",
		Status:    string(domain.BookingCheckedIn),
	})
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingNights(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	b := &domain.Booking{CheckIn: base, CheckOut: base.AddDate(0, 0, 3)}
	if b.Nights() != 3 {
		t.Errorf("expected 3 nights, got %d", b.Nights())
	}

	// Same-day stays still charge one night.
	b = &domain.Booking{CheckIn: base, CheckOut: base}
	if b.Nights() != 1 {
		t.Errorf("expected 1 night minimum, got %d", b.Nights())
	}
}
