package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lakeview/hotel-system/internal/core/ports"
)

const topMenuItemsLimit = 5

// ReportService assembles the management summary from aggregation queries.
type ReportService struct {
	reports ports.ReportRepository
	log     zerolog.Logger
}

func NewReportService(reports ports.ReportRepository, log zerolog.Logger) *ReportService {
	return &ReportService{reports: reports, log: log}
}

// Summary returns the overview for a date range. A zero range defaults to the
// last 30 days.
func (s *ReportService) Summary(ctx context.Context, r ports.ReportRange) (*ports.Summary, error) {
	if r.To.IsZero() {
		r.To = time.Now().UTC()
	}
	if r.From.IsZero() {
		r.From = r.To.AddDate(0, 0, -30)
	}

	revenue, settled, err := s.reports.Revenue(ctx, r)
	if err != nil {
		return nil, err
	}
	bookings, err := s.reports.BookingsByStatus(ctx, r)
	if err != nil {
		return nil, err
	}
	orders, err := s.reports.OrdersByStatus(ctx, r)
	if err != nil {
		return nil, err
	}
	topItems, err := s.reports.TopMenuItems(ctx, r, topMenuItemsLimit)
	if err != nil {
		return nil, err
	}
	rating, err := s.reports.AverageRating(ctx, r)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Time("from", r.From).Time("to", r.To).Msg("summary report built")

	return &ports.Summary{
		From:             r.From,
		To:               r.To,
		Revenue:          revenue,
		BillsSettled:     settled,
		BookingsByStatus: bookings,
		OrdersByStatus:   orders,
		TopMenuItems:     topItems,
		AverageRating:    rating,
	}, nil
}
