package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a room booking.
type BookingStatus string

const (
	BookingBooked     BookingStatus = "booked"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// validBookingTransitions defines the allowed state machine transitions.
var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingBooked:    {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCheckedOut},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrRoomUnavailable = errors.New("room unavailable for the requested dates")
var ErrInvalidBookingTransition = errors.New("invalid booking status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BookingHistoryEntry records a single status transition on a booking.
type BookingHistoryEntry struct {
	Status    BookingStatus `json:"status" bson:"status"`
	Timestamp time.Time     `json:"timestamp" bson:"timestamp"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Booking is a reservation of one room for one guest over a date range.
type Booking struct {
	ID            string                `json:"id" bson:"_id,omitempty"`
	Reference     string                `json:"reference" bson:"reference"`
	GuestID       string                `json:"guest_id" bson:"guest_id"`
	GuestName     string                `json:"guest_name" bson:"guest_name"`
	RoomNumber    string                `json:"room_number" bson:"room_number"`
	CheckIn       time.Time             `json:"check_in" bson:"check_in"`
	CheckOut      time.Time             `json:"check_out" bson:"check_out"`
	Guests        int                   `json:"guests" bson:"guests"`
	NightlyRate   float64               `json:"nightly_rate" bson:"nightly_rate"`
	Status        BookingStatus         `json:"status" bson:"status"`
	StatusHistory []BookingHistoryEntry `json:"status_history" bson:"status_history"`
	CreatedAt     time.Time             `json:"created_at" bson:"created_at"`
}

// Nights returns the number of nights covered by the booking, never below one.
func (b *Booking) Nights() int {
	n := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}
