package bookingRepo

import "savora/models"

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByUser(userID string) ([]models.Booking, error)
	GetByRestaurantIDs(restaurantIDs []string) ([]models.Booking, error)
	UpdateStatus(id, status string) error
}
