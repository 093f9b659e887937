package models

import "time"

// VideoItem is one unit of feed content: a short restaurant video.
// Items are fetch-then-render snapshots; a full reload replaces the
// in-memory collection entirely.
type VideoItem struct {
	ID           string      `bson:"id" json:"id"`
	RestaurantID string      `bson:"restaurant_id" json:"restaurant_id"`
	Category     string      `bson:"category" json:"category"` // cuisine tag, e.g. "Indian"
	Title        string      `bson:"title" json:"title"`
	MediaURL     string      `bson:"media_url" json:"media_url"`
	ThumbnailURL string      `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	Location     *Coordinate `bson:"location,omitempty" json:"location,omitempty"`
	LikeCount    int         `bson:"like_count" json:"like_count"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
}

// FeedFilter carries the optional feed query constraints.
type FeedFilter struct {
	Origin   *Coordinate `json:"origin,omitempty"`
	RadiusKm *float64    `json:"radius_km,omitempty"`
	Category string      `json:"category,omitempty"` // "all" or "" means no restriction
}
