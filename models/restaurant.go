package models

import "time"

// Restaurant is a venue profile. Location may be absent for venues that
// never set one; discovery keeps them with no distance computed.
type Restaurant struct {
	ID          string      `bson:"id" json:"id"`
	OwnerID     string      `bson:"owner_id" json:"owner_id"`
	Name        string      `bson:"name" json:"name"`
	Category    string      `bson:"category" json:"category"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Address     string      `bson:"address,omitempty" json:"address,omitempty"`
	Location    *Coordinate `bson:"location,omitempty" json:"location,omitempty"`
	ImageURL    string      `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Rating      float64     `bson:"rating" json:"rating"`
	ReviewCount int         `bson:"review_count" json:"review_count"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
}

// RestaurantWithDistance decorates a restaurant with the computed
// distance from the query origin, when known.
type RestaurantWithDistance struct {
	Restaurant
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	DistanceLabel string   `json:"distance_label,omitempty"`
}
