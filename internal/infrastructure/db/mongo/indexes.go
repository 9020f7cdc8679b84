package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureAllIndexes creates the indexes every repository depends on. Run at
// startup before the server accepts traffic.
func EnsureAllIndexes(ctx context.Context, db *mongo.Database) error {
	for name, ensure := range map[string]func(context.Context) error{
		"users":    NewUserRepository(db).EnsureIndexes,
		"rooms":    NewRoomRepository(db).EnsureIndexes,
		"bookings": NewBookingRepository(db).EnsureIndexes,
		"orders":   NewOrderRepository(db).EnsureIndexes,
		"bills":    NewBillRepository(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}
