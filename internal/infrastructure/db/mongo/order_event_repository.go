package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

const collectionOrderEvents = "order_events"

// OrderEventRepository is the append-only audit trail of processed order events.
type OrderEventRepository struct {
	coll *mongo.Collection
}

func NewOrderEventRepository(db *mongo.Database) *OrderEventRepository {
	return &OrderEventRepository{coll: db.Collection(collectionOrderEvents)}
}

type mongoOrderEvent struct {
	OrderNumber string `bson:"order_number"`
	Status      string `bson:"status"`
	Timestamp   int64  `bson:"timestamp"`
	Source      string `bson:"source,omitempty"`
}

func (r *OrderEventRepository) Insert(ctx context.Context, event *domain.OrderEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoOrderEvent{
		OrderNumber: event.OrderNumber,
		Status:      string(event.Status),
		Timestamp:   event.Timestamp.Unix(),
		Source:      event.Source,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order event: %w", err)
	}
	return nil
}
