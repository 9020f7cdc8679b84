package ports

import (
	"context"
	"time"
)

// StatusCount is one bucket of a grouped count.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MenuItemCount ranks a menu item by quantity ordered.
type MenuItemCount struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// ReportRange bounds a report query.
type ReportRange struct {
	From time.Time
	To   time.Time
}

// Summary is the management overview for a date range.
type Summary struct {
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	Revenue          float64         `json:"revenue"`
	BillsSettled     int64           `json:"bills_settled"`
	BookingsByStatus []StatusCount   `json:"bookings_by_status"`
	OrdersByStatus   []StatusCount   `json:"orders_by_status"`
	TopMenuItems     []MenuItemCount `json:"top_menu_items"`
	AverageRating    float64         `json:"average_rating"`
}

// ReportRepository runs the aggregation pipelines behind management reports.
type ReportRepository interface {
	Revenue(ctx context.Context, r ReportRange) (float64, int64, error)
	BookingsByStatus(ctx context.Context, r ReportRange) ([]StatusCount, error)
	OrdersByStatus(ctx context.Context, r ReportRange) ([]StatusCount, error)
	TopMenuItems(ctx context.Context, r ReportRange, limit int) ([]MenuItemCount, error)
	AverageRating(ctx context.Context, r ReportRange) (float64, error)
}

// ReportService defines the reporting use case.
type ReportService interface {
	Summary(ctx context.Context, r ReportRange) (*Summary, error)
}
