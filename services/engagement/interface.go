package engagement

import (
	"context"

	"savora/models"
)

// EngagementService covers likes and favorites.
type EngagementService interface {
	LikeVideo(ctx context.Context, userID, videoID string) (int, error)
	UnlikeVideo(ctx context.Context, userID, videoID string) (int, error)
	AddFavorite(ctx context.Context, userID, restaurantID string) error
	RemoveFavorite(ctx context.Context, userID, restaurantID string) error
	ListFavorites(ctx context.Context, userID string) ([]models.Restaurant, error)
}
