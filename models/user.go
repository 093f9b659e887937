package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

// User is an account. Owners additionally manage one or more
// restaurants; a single account can hold bookings on both sides.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	AvatarURL    string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Favorites    []string  `bson:"favorites,omitempty" json:"favorites,omitempty"` // restaurant IDs
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
