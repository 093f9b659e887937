package userRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// AddFavorite records a restaurant in the user's favorites set.
// $addToSet keeps repeated taps idempotent.
func (r *MongoUserRepo) AddFavorite(userID, restaurantID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"favorites": restaurantID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to add favorite for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", userID)
	}
	return nil
}

// RemoveFavorite removes a restaurant from the user's favorites set.
func (r *MongoUserRepo) RemoveFavorite(userID, restaurantID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"favorites": restaurantID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove favorite for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", userID)
	}
	return nil
}
