package booking

import (
	"context"
	"time"

	"savora/models"
)

// BookingService manages table bookings for customers and restaurant
// owners.
type BookingService interface {
	CreateBooking(ctx context.Context, b models.Booking) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, actorID, newStatus string) (*models.Booking, error)
	// ListForViewer merges the viewer's owner-scoped and personal-scoped
	// bookings and buckets them into upcoming/past windows.
	ListForViewer(ctx context.Context, viewer models.User, now time.Time) (*models.BookingBuckets, error)
}
