package reviewRepo

import "savora/models"

// ReviewRepository defines storage operations for restaurant reviews.
type ReviewRepository interface {
	Insert(rev *models.Review) error
	GetByRestaurant(restaurantID string, limit int) ([]models.Review, error)
	CountByUser(userID string) (int64, error)
}
