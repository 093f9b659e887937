package review

import (
	"context"

	"savora/models"
)

// ReviewService handles restaurant reviews and the badges they earn.
type ReviewService interface {
	SubmitReview(ctx context.Context, userID, restaurantID string, rating int, text string) (*models.Review, error)
	ListForRestaurant(ctx context.Context, restaurantID string, limit int) ([]models.Review, error)
}
