package ports

import (
	"context"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

// RoomRepository defines the persistence interface for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByNumber(ctx context.Context, number string) (*domain.Room, error)
	Update(ctx context.Context, number string, update RoomUpdate) (*domain.Room, error)
	Delete(ctx context.Context, number string) error
	List(ctx context.Context, onlyAvailable bool) ([]domain.Room, error)
}

// RoomInput carries the data to create a room.
type RoomInput struct {
	Number      string
	Type        string
	NightlyRate float64
	Capacity    int
	Description string
	Image       string
}

// RoomUpdate carries a partial room edit. Nil fields are left untouched.
type RoomUpdate struct {
	Type        *string
	NightlyRate *float64
	Capacity    *int
	Description *string
	Image       *string
	Available   *bool
}

// RoomService defines use-case operations for rooms.
type RoomService interface {
	Create(ctx context.Context, input RoomInput) (*domain.Room, error)
	Get(ctx context.Context, number string) (*domain.Room, error)
	Update(ctx context.Context, number string, update RoomUpdate) (*domain.Room, error)
	Delete(ctx context.Context, number string) error
	List(ctx context.Context, onlyAvailable bool) ([]domain.Room, error)
}
