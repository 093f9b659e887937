package models

import "time"

// Booking status values.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
	BookingNoShow    = "no_show"
)

// Booking represents a table booking record.
// Date and Time are kept as strings ("2006-01-02" and "15:04") and are
// combined without timezone conversion when classified; the venue's
// local clock is assumed throughout.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	RestaurantID string    `bson:"restaurant_id" json:"restaurant_id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Date         string    `bson:"date" json:"date"`
	Time         string    `bson:"time" json:"time"`
	PartySize    int       `bson:"party_size" json:"party_size"`
	Status       string    `bson:"status" json:"status"`
	Note         string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingNoShow:
		return true
	}
	return false
}

// BookingBuckets is the classified view of a user's bookings.
type BookingBuckets struct {
	Upcoming []Booking `json:"upcoming"`
	Past     []Booking `json:"past"`
}
