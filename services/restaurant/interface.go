package restaurant

import (
	"context"

	"savora/models"
)

// RestaurantService covers venue discovery and owner management.
type RestaurantService interface {
	Create(ctx context.Context, rest models.Restaurant) (*models.Restaurant, error)
	GetByID(ctx context.Context, id string, origin *models.Coordinate) (*models.RestaurantWithDistance, error)
	Browse(ctx context.Context, category string, origin *models.Coordinate, limit int) ([]models.RestaurantWithDistance, error)
	ListOwned(ctx context.Context, ownerID string) ([]models.Restaurant, error)
}
