package domain

import (
	"errors"
	"time"
)

// BillStatus is the settlement state of a bill.
type BillStatus string

const (
	BillOpen BillStatus = "open"
	BillPaid BillStatus = "paid"
)

var ErrBillNotFound = errors.New("bill not found")
var ErrBillAlreadyPaid = errors.New("bill already paid")
var ErrBillExists = errors.New("bill already issued for booking")

// BillLine is one charge on a bill: the room stay or one food order.
type BillLine struct {
	Description string  `json:"description" bson:"description"`
	Reference   string  `json:"reference,omitempty" bson:"reference,omitempty"`
	Amount      float64 `json:"amount" bson:"amount"`
}

// Bill aggregates the room charge and all served orders of a stay.
type Bill struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Number     string     `json:"number" bson:"number"`
	BookingID  string     `json:"booking_id" bson:"booking_id"`
	GuestID    string     `json:"guest_id,omitempty" bson:"guest_id,omitempty"`
	RoomNumber string     `json:"room_number" bson:"room_number"`
	Lines      []BillLine `json:"lines" bson:"lines"`
	Total      float64    `json:"total" bson:"total"`
	Status     BillStatus `json:"status" bson:"status"`
	IssuedBy   string     `json:"issued_by" bson:"issued_by"`
	IssuedAt   time.Time  `json:"issued_at" bson:"issued_at"`
	PaidAt     *time.Time `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}
