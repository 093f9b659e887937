package models

import "time"

// Badge identifiers awarded on activity milestones.
const (
	BadgeFirstReview  = "first_review"
	BadgeTopReviewer  = "top_reviewer"  // 10 reviews
	BadgeRegularDiner = "regular_diner" // 5 completed bookings
	BadgeEarlyAdopter = "early_adopter"
)

// Badge records a milestone earned by a user.
type Badge struct {
	ID       string    `bson:"id" json:"id"`
	UserID   string    `bson:"user_id" json:"user_id"`
	Kind     string    `bson:"kind" json:"kind"`
	EarnedAt time.Time `bson:"earned_at" json:"earned_at"`
}
