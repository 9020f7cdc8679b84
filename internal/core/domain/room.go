package domain

import (
	"errors"
	"time"
)

// RoomType classifies a room for pricing and capacity.
type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomDeluxe   RoomType = "deluxe"
	RoomSuite    RoomType = "suite"
)

var ErrRoomNotFound = errors.New("room not found")
var ErrRoomExists = errors.New("room already exists")

// Room is a bookable unit of the property, keyed by its human-facing number.
type Room struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Number      string    `json:"number" bson:"number"`
	Type        RoomType  `json:"type" bson:"type"`
	NightlyRate float64   `json:"nightly_rate" bson:"nightly_rate"`
	Capacity    int       `json:"capacity" bson:"capacity"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Available   bool      `json:"available" bson:"available"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
