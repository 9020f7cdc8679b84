package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// RoomService implements the room management use cases.
type RoomService struct {
	rooms ports.RoomRepository
	log   zerolog.Logger
}

func NewRoomService(rooms ports.RoomRepository, log zerolog.Logger) *RoomService {
	return &RoomService{rooms: rooms, log: log}
}

func (s *RoomService) Create(ctx context.Context, input ports.RoomInput) (*domain.Room, error) {
	now := time.Now().UTC()
	room := &domain.Room{
		Number:      input.Number,
		Type:        domain.RoomType(input.Type),
		NightlyRate: input.NightlyRate,
		Capacity:    input.Capacity,
		Description: input.Description,
		Image:       input.Image,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.rooms.Create(ctx, room)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("room", created.Number).Str("type", string(created.Type)).Msg("room created")
	return created, nil
}

func (s *RoomService) Get(ctx context.Context, number string) (*domain.Room, error) {
	return s.rooms.FindByNumber(ctx, number)
}

func (s *RoomService) Update(ctx context.Context, number string, update ports.RoomUpdate) (*domain.Room, error) {
	return s.rooms.Update(ctx, number, update)
}

func (s *RoomService) Delete(ctx context.Context, number string) error {
	if err := s.rooms.Delete(ctx, number); err != nil {
		return err
	}
	s.log.Info().Str("room", number).Msg("room deleted")
	return nil
}

func (s *RoomService) List(ctx context.Context, onlyAvailable bool) ([]domain.Room, error) {
	return s.rooms.List(ctx, onlyAvailable)
}
