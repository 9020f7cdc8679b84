package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// ReportRepository runs the aggregation pipelines behind management reports.
type ReportRepository struct {
	db *mongo.Database
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{db: db}
}

// Revenue sums paid bills in the range and counts them.
func (r *ReportRepository) Revenue(ctx context.Context, rng ports.ReportRange) (float64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":  domain.BillPaid,
			"paid_at": bson.M{"$gte": rng.From, "$lt": rng.To},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$total"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.db.Collection(collectionBills).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("revenue aggregation: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Revenue float64 `bson:"revenue"`
		Count   int64   `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, 0, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Revenue, rows[0].Count, nil
}

// BookingsByStatus groups bookings created in the range by status.
func (r *ReportRepository) BookingsByStatus(ctx context.Context, rng ports.ReportRange) ([]ports.StatusCount, error) {
	return r.countByStatus(ctx, collectionBookings, rng)
}

// OrdersByStatus groups orders created in the range by status.
func (r *ReportRepository) OrdersByStatus(ctx context.Context, rng ports.ReportRange) ([]ports.StatusCount, error) {
	return r.countByStatus(ctx, collectionOrders, rng)
}

func (r *ReportRepository) countByStatus(ctx context.Context, collection string, rng ports.ReportRange) ([]ports.StatusCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": rng.From, "$lt": rng.To},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cur, err := r.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("status aggregation (%s): %w", collection, err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode status counts: %w", err)
	}

	counts := make([]ports.StatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, ports.StatusCount{Status: row.Status, Count: row.Count})
	}
	return counts, nil
}

// TopMenuItems unwinds order lines in the range and ranks items by quantity.
func (r *ReportRepository) TopMenuItems(ctx context.Context, rng ports.ReportRange, limit int) ([]ports.MenuItemCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 5
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": rng.From, "$lt": rng.To},
			"status":     bson.M{"$ne": domain.OrderCancelled},
		}}},
		{{Key: "$unwind", Value: "$lines"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$lines.name",
			"quantity": bson.M{"$sum": "$lines.quantity"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "quantity", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.db.Collection(collectionOrders).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("top menu items aggregation: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Name     string `bson:"_id"`
		Quantity int64  `bson:"quantity"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode top menu items: %w", err)
	}

	items := make([]ports.MenuItemCount, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.MenuItemCount{Name: row.Name, Quantity: row.Quantity})
	}
	return items, nil
}

// AverageRating averages feedback ratings submitted in the range.
func (r *ReportRepository) AverageRating(ctx context.Context, rng ports.ReportRange) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": rng.From, "$lt": rng.To},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"rating": bson.M{"$avg": "$rating"},
		}}},
	}

	cur, err := r.db.Collection(collectionFeedback).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("rating aggregation: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Rating float64 `bson:"rating"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode rating: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Rating, nil
}
