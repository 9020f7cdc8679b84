package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

const collectionBills = "bills"

type BillRepository struct {
	coll *mongo.Collection
}

func NewBillRepository(db *mongo.Database) *BillRepository {
	return &BillRepository{coll: db.Collection(collectionBills)}
}

func (r *BillRepository) Create(ctx context.Context, bill *domain.Bill) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, bill); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrBillExists
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

func (r *BillRepository) FindByNumber(ctx context.Context, number string) (*domain.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Bill
	if err := r.coll.FindOne(ctx, bson.M{"number": number}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("find bill: %w", err)
	}
	return &b, nil
}

func (r *BillRepository) FindByBooking(ctx context.Context, bookingID string) (*domain.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Bill
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("find bill by booking: %w", err)
	}
	return &b, nil
}

func (r *BillRepository) MarkPaid(ctx context.Context, number string) (*domain.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	after := options.After
	var b domain.Bill
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"number": number, "status": domain.BillOpen},
		bson.M{"$set": bson.M{"status": domain.BillPaid, "paid_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("mark bill paid: %w", err)
	}
	return &b, nil
}

func (r *BillRepository) List(ctx context.Context, status string) ([]domain.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "issued_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer cur.Close(ctx)

	var bills []domain.Bill
	if err := cur.All(ctx, &bills); err != nil {
		return nil, fmt.Errorf("decode bills: %w", err)
	}
	return bills, nil
}

// EnsureIndexes creates the bill indexes.
func (r *BillRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
