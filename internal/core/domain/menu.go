package domain

import (
	"errors"
	"time"
)

// MenuCategory groups menu items on the ordering page.
type MenuCategory string

const (
	CategoryBreakfast MenuCategory = "breakfast"
	CategoryMains     MenuCategory = "mains"
	CategoryDesserts  MenuCategory = "desserts"
	CategoryDrinks    MenuCategory = "drinks"
)

var ErrMenuItemNotFound = errors.New("menu item not found")
var ErrMenuItemExists = errors.New("menu item already exists")

// MenuItem is a single orderable dish or drink.
type MenuItem struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Name        string       `json:"name" bson:"name"`
	Category    MenuCategory `json:"category" bson:"category"`
	Price       float64      `json:"price" bson:"price"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Image       string       `json:"image,omitempty" bson:"image,omitempty"`
	Available   bool         `json:"available" bson:"available"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}
