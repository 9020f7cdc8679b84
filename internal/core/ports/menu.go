package ports

import (
	"context"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

// MenuRepository defines the persistence interface for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, update MenuItemUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string, onlyAvailable bool) ([]domain.MenuItem, error)
}

// MenuItemInput carries the data to create a menu item.
type MenuItemInput struct {
	Name        string
	Category    string
	Price       float64
	Description string
	Image       string
}

// MenuItemUpdate carries a partial menu item edit. Nil fields are left untouched.
type MenuItemUpdate struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
	Image       *string
	Available   *bool
}

// MenuService defines use-case operations for the menu.
type MenuService interface {
	Create(ctx context.Context, input MenuItemInput) (*domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, update MenuItemUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string, onlyAvailable bool) ([]domain.MenuItem, error)
}

// TableTokenService mints and verifies the signed tokens embedded in QR codes
// so a device at a table can order without an account.
type TableTokenService interface {
	Mint(roomNumber string) (string, error)
	// Verify returns the room number the token was minted for.
	Verify(token string) (string, error)
}
