package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// MenuService implements the menu management use cases.
type MenuService struct {
	menu ports.MenuRepository
	log  zerolog.Logger
}

func NewMenuService(menu ports.MenuRepository, log zerolog.Logger) *MenuService {
	return &MenuService{menu: menu, log: log}
}

func (s *MenuService) Create(ctx context.Context, input ports.MenuItemInput) (*domain.MenuItem, error) {
	now := time.Now().UTC()
	item := &domain.MenuItem{
		Name:        input.Name,
		Category:    domain.MenuCategory(input.Category),
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.menu.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("item_id", created.ID).Str("name", created.Name).Msg("menu item created")
	return created, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.menu.FindByID(ctx, id)
}

func (s *MenuService) Update(ctx context.Context, id string, update ports.MenuItemUpdate) (*domain.MenuItem, error) {
	return s.menu.Update(ctx, id, update)
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.menu.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("item_id", id).Msg("menu item deleted")
	return nil
}

func (s *MenuService) List(ctx context.Context, category string, onlyAvailable bool) ([]domain.MenuItem, error) {
	return s.menu.List(ctx, category, onlyAvailable)
}
