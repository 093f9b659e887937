package userRepo

import (
	"fmt"
	"time"

	"savora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AwardBadge stores an earned badge. The unique (user_id, kind) index
// makes double awards a no-op error the caller may ignore.
func (r *MongoUserRepo) AwardBadge(badge *models.Badge) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	badge.EarnedAt = time.Now()

	_, err := r.badges.InsertOne(ctx, badge)
	if err != nil {
		return fmt.Errorf("failed to award badge %s to user %s: %w", badge.Kind, badge.UserID, err)
	}
	return nil
}

// GetBadges returns all badges a user has earned.
func (r *MongoUserRepo) GetBadges(userID string) ([]models.Badge, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.badges.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query badges for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var badges []models.Badge
	if err := cursor.All(ctx, &badges); err != nil {
		return nil, fmt.Errorf("failed to decode badges: %w", err)
	}
	return badges, nil
}

// HasBadge reports whether the user already earned a badge kind.
func (r *MongoUserRepo) HasBadge(userID, kind string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	err := r.badges.FindOne(ctx, bson.M{"user_id": userID, "kind": kind}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check badge %s for user %s: %w", kind, userID, err)
	}
	return true, nil
}
