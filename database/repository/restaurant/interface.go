package restaurantRepo

import "savora/models"

// RestaurantRepository defines storage operations for venues.
type RestaurantRepository interface {
	Create(rest *models.Restaurant) error
	GetByID(id string) (*models.Restaurant, error)
	GetByOwner(ownerID string) ([]models.Restaurant, error)
	GetByCategory(category string, limit int) ([]models.Restaurant, error)
	ApplyReview(id string, rating int) error
}
