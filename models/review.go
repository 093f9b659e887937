package models

import "time"

// Review is a rated restaurant review. Rating is validated caller-side
// (1..5) before any write is attempted.
type Review struct {
	ID           string    `bson:"id" json:"id"`
	RestaurantID string    `bson:"restaurant_id" json:"restaurant_id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Rating       int       `bson:"rating" json:"rating"`
	Text         string    `bson:"text" json:"text"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
