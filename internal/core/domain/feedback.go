package domain

import (
	"errors"
	"time"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

// Feedback is a guest rating with an optional comment.
type Feedback struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	GuestID    string    `json:"guest_id" bson:"guest_id"`
	GuestName  string    `json:"guest_name" bson:"guest_name"`
	RoomNumber string    `json:"room_number,omitempty" bson:"room_number,omitempty"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
