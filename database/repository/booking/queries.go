package bookingRepo

import (
	"fmt"
	"time"

	"savora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByUser retrieves the personal-scoped bookings made by a user.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	return r.find(bson.M{"user_id": userID})
}

// GetByRestaurantIDs retrieves the owner-scoped bookings held against
// any of the given restaurants.
func (r *MongoBookingRepo) GetByRestaurantIDs(restaurantIDs []string) ([]models.Booking, error) {
	if len(restaurantIDs) == 0 {
		return nil, nil
	}
	return r.find(bson.M{"restaurant_id": bson.M{"$in": restaurantIDs}})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return normalizeAll(docs), nil
}
