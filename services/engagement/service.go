package engagement

import (
	"context"

	restaurantRepo "savora/database/repository/restaurant"
	userRepo "savora/database/repository/user"
	videoRepo "savora/database/repository/video"
	"savora/models"
	"savora/utils"

	"go.uber.org/zap"
)

// DefaultEngagementService is the production implementation.
type DefaultEngagementService struct {
	Users       userRepo.UserRepository
	Videos      videoRepo.VideoRepository
	Restaurants restaurantRepo.RestaurantRepository
}

// LikeVideo bumps the like counter for a video and returns the count
// the caller should display.
func (s *DefaultEngagementService) LikeVideo(ctx context.Context, userID, videoID string) (int, error) {
	return s.adjustLike(videoID, +1)
}

// UnlikeVideo reverses a like and returns the resulting count.
func (s *DefaultEngagementService) UnlikeVideo(ctx context.Context, userID, videoID string) (int, error) {
	return s.adjustLike(videoID, -1)
}

// adjustLike runs the counter change as an optimistic mutation: the
// count the caller sees moves first, the repository write follows, and
// a failed write rolls the count back so the response reflects what is
// actually stored.
func (s *DefaultEngagementService) adjustLike(videoID string, delta int) (int, error) {
	v, err := s.Videos.GetByID(videoID)
	if err != nil {
		return 0, utils.WrapAPIError(utils.KindNotFound, "video not found", err)
	}

	m := Mutation[int]{
		ApplyLocal:    func(count int) int { return count + delta },
		CommitRemote:  func() error { return s.Videos.IncrementLikeCount(videoID, delta) },
		RollbackLocal: func(count int) int { return count - delta },
	}
	count, err := m.Run(v.LikeCount)
	if err != nil {
		return count, utils.WrapAPIError(utils.KindTransient, "could not update like count", err)
	}
	return count, nil
}

// AddFavorite saves a restaurant to the user's favorites.
func (s *DefaultEngagementService) AddFavorite(ctx context.Context, userID, restaurantID string) error {
	if _, err := s.Restaurants.GetByID(restaurantID); err != nil {
		return utils.WrapAPIError(utils.KindNotFound, "restaurant not found", err)
	}
	if err := s.Users.AddFavorite(userID, restaurantID); err != nil {
		return utils.WrapAPIError(utils.KindTransient, "could not save favorite", err)
	}
	return nil
}

// RemoveFavorite drops a restaurant from the user's favorites.
func (s *DefaultEngagementService) RemoveFavorite(ctx context.Context, userID, restaurantID string) error {
	if err := s.Users.RemoveFavorite(userID, restaurantID); err != nil {
		return utils.WrapAPIError(utils.KindTransient, "could not remove favorite", err)
	}
	return nil
}

// ListFavorites resolves the user's saved restaurant IDs. Entries that
// no longer resolve are skipped rather than failing the whole list.
func (s *DefaultEngagementService) ListFavorites(ctx context.Context, userID string) ([]models.Restaurant, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindNotFound, "user not found", err)
	}

	out := make([]models.Restaurant, 0, len(u.Favorites))
	for _, id := range u.Favorites {
		rest, err := s.Restaurants.GetByID(id)
		if err != nil {
			zap.L().Warn("engagement: stale favorite skipped", zap.String("restaurantId", id), zap.Error(err))
			continue
		}
		out = append(out, *rest)
	}
	return out, nil
}
