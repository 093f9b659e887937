package bookingRepo

import (
	"time"

	"savora/models"
)

// bookingDoc is the raw document shape. Older writers stored the
// calendar fields as booking_date/booking_time; newer ones use
// date/time. Both spellings are accepted here and normalized into the
// canonical models.Booking before any document leaves this package.
type bookingDoc struct {
	ID           string    `bson:"id"`
	RestaurantID string    `bson:"restaurant_id"`
	UserID       string    `bson:"user_id"`
	Date         string    `bson:"date,omitempty"`
	BookingDate  string    `bson:"booking_date,omitempty"`
	Time         string    `bson:"time,omitempty"`
	BookingTime  string    `bson:"booking_time,omitempty"`
	PartySize    int       `bson:"party_size"`
	Status       string    `bson:"status"`
	Note         string    `bson:"note,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d bookingDoc) normalize() models.Booking {
	b := models.Booking{
		ID:           d.ID,
		RestaurantID: d.RestaurantID,
		UserID:       d.UserID,
		Date:         d.Date,
		Time:         d.Time,
		PartySize:    d.PartySize,
		Status:       d.Status,
		Note:         d.Note,
		CreatedAt:    d.CreatedAt,
	}
	if b.Date == "" {
		b.Date = d.BookingDate
	}
	if b.Time == "" {
		b.Time = d.BookingTime
	}
	return b
}

func normalizeAll(docs []bookingDoc) []models.Booking {
	out := make([]models.Booking, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.normalize())
	}
	return out
}
