package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// OrderService implements order placement and lookup.
type OrderService struct {
	orders ports.OrderRepository
	menu   ports.MenuRepository
	tokens ports.TableTokenService
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, menu ports.MenuRepository, tokens ports.TableTokenService, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, menu: menu, tokens: tokens, log: log}
}

// Place creates an order for a room. Identity comes either from a logged-in
// customer or from a table token minted for the room; a token always decides
// the room number so a tampered request cannot re-route charges.
func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if len(input.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	roomNumber := input.RoomNumber
	if input.TableToken != "" {
		room, err := s.tokens.Verify(input.TableToken)
		if err != nil {
			return nil, err
		}
		roomNumber = room
	} else if input.CustomerID == "" {
		return nil, domain.ErrInvalidTableToken
	}
	if roomNumber == "" {
		return nil, domain.ErrEmptyOrder
	}

	var lines []domain.OrderLine
	var total float64
	for _, l := range input.Lines {
		if l.Quantity <= 0 {
			continue
		}
		item, err := s.menu.FindByID(ctx, l.MenuItemID)
		if err != nil {
			return nil, err
		}
		if !item.Available {
			return nil, domain.ErrMenuItemNotFound
		}
		lines = append(lines, domain.OrderLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   l.Quantity,
		})
		total += item.Price * float64(l.Quantity)
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	now := time.Now().UTC()
	order := &domain.Order{
		Number:     newReference("ORD"),
		RoomNumber: roomNumber,
		CustomerID: input.CustomerID,
		Lines:      lines,
		Total:      total,
		Status:     domain.OrderPlaced,
		StatusHistory: []domain.OrderHistoryEntry{
			{Status: domain.OrderPlaced, Timestamp: now},
		},
		Notes:     input.Notes,
		CreatedAt: now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Str("room", roomNumber).Msg("failed to create order")
		return nil, err
	}

	s.log.Info().Str("number", order.Number).Str("room", roomNumber).Float64("total", total).Msg("order placed")
	return order, nil
}

// Get retrieves an order by number.
func (s *OrderService) Get(ctx context.Context, number string) (*domain.Order, error) {
	return s.orders.FindByNumber(ctx, number)
}

// List returns orders matching the filter.
func (s *OrderService) List(ctx context.Context, filter ports.OrderFilter) ([]domain.Order, error) {
	return s.orders.List(ctx, filter)
}
