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

type stubMenuRepo struct {
	byID map[string]*domain.MenuItem
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{byID: make(map[string]*domain.MenuItem)}
}

func (r *stubMenuRepo) Create(_ context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	r.byID[item.ID] = item
	return item, nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id string) (*domain.MenuItem, error) {
	item, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	return item, nil
}

func (r *stubMenuRepo) Update(_ context.Context, id string, update ports.MenuItemUpdate) (*domain.MenuItem, error) {
	item, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	if update.Available != nil {
		item.Available = *update.Available
	}
	return item, nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubMenuRepo) List(_ context.Context, category string, onlyAvailable bool) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range r.byID {
		if category != "" && string(item.Category) != category {
			continue
		}
		if onlyAvailable && !item.Available {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func seededMenuRepo() *stubMenuRepo {
	repo := newStubMenuRepo()
	repo.byID["m1"] = &domain.MenuItem{ID: "m1", Name: "Club Sandwich", Price: 14, Available: true}
	repo.byID["m2"] = &domain.MenuItem{ID: "m2", Name: "Lemonade", Price: 5, Available: true}
	repo.byID["m3"] = &domain.MenuItem{ID: "m3", Name: "Oysters", Price: 28, Available: false}
	return repo
}

func newOrderSvc(orders *stubOrderRepo, menu *stubMenuRepo) *OrderService {
	tokens := NewTableTokenService("table-secret", time.Hour)
	return NewOrderService(orders, menu, tokens, zerolog.Nop())
}

func TestOrderService_Place_AsCustomer(t *testing.T) {
	orders := newStubOrderRepo()
	svc := newOrderSvc(orders, seededMenuRepo())

	order, err := svc.Place(context.Background(), ports.PlaceOrderInput{
		CustomerID: "u1",
		RoomNumber: "204",
		Lines: []ports.OrderLineInput{
			{MenuItemID: "m1", Quantity: 2},
			{MenuItemID: "m2", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if order.Total != 33 {
		t.Errorf("expected total 33, got %v", order.Total)
	}
	if order.Status != domain.OrderPlaced {
		t.Errorf("expected placed, got %s", order.Status)
	}
	if len(order.Lines) != 2 {
		t.Errorf("expected two lines, got %d", len(order.Lines))
	}
}

// A token always decides the room: a tampered room number in the payload
// cannot re-route the charge.
func TestOrderService_Place_TokenOverridesRoom(t *testing.T) {
	orders := newStubOrderRepo()
	svc := newOrderSvc(orders, seededMenuRepo())

	token, err := NewTableTokenService("table-secret", time.Hour).Mint("310")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	order, err := svc.Place(context.Background(), ports.PlaceOrderInput{
		RoomNumber: "999",
		TableToken: token,
		Lines:      []ports.OrderLineInput{{MenuItemID: "m2", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if order.RoomNumber != "310" {
		t.Errorf("expected room from token, got %s", order.RoomNumber)
	}
}

func TestOrderService_Place_AnonymousWithoutToken(t *testing.T) {
	svc := newOrderSvc(newStubOrderRepo(), seededMenuRepo())

	_, err := svc.Place(context.Background(), ports.PlaceOrderInput{
		RoomNumber: "204",
		Lines:      []ports.OrderLineInput{{MenuItemID: "m1", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrInvalidTableToken) {
		t.Fatalf("expected ErrInvalidTableToken, got %v", err)
	}
}

func TestOrderService_Place_BadToken(t *testing.T) {
	svc := newOrderSvc(newStubOrderRepo(), seededMenuRepo())

	_, err := svc.Place(context.Background(), ports.PlaceOrderInput{
		TableToken: "forged",
		Lines:      []ports.OrderLineInput{{MenuItemID: "m1", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrInvalidTableToken) {
		t.Fatalf("expected ErrInvalidTableToken, got %v", err)
	}
}

func TestOrderService_Place_EmptyOrder(t *testing.T) {
	svc := newOrderSvc(newStubOrderRepo(), seededMenuRepo())

	_, err := svc.Place(context.Background(), ports.PlaceOrderInput{CustomerID: "u1", RoomNumber: "204"})
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}

	// All-zero quantities collapse to an empty order too.
	_, err = svc.Place(context.Background(), ports.PlaceOrderInput{
		CustomerID: "u1",
		RoomNumber: "204",
		Lines:      []ports.OrderLineInput{{MenuItemID: "m1", Quantity: 0}},
	})
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderService_Place_UnavailableItem(t *testing.T) {
	svc := newOrderSvc(newStubOrderRepo(), seededMenuRepo())

	_, err := svc.Place(context.Background(), ports.PlaceOrderInput{
		CustomerID: "u1",
		RoomNumber: "204",
		Lines:      []ports.OrderLineInput{{MenuItemID: "m3", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}
