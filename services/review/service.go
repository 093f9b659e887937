package review

import (
	"context"
	"strings"
	"time"

	restaurantRepo "savora/database/repository/restaurant"
	reviewRepo "savora/database/repository/review"
	userRepo "savora/database/repository/user"
	"savora/models"
	"savora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultReviewLimit = 50

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	Restaurants restaurantRepo.RestaurantRepository
	Users       userRepo.UserRepository
}

// SubmitReview validates and stores a review, folds the rating into the
// restaurant's running average and awards milestone badges. Validation
// failures surface before any write.
func (s *DefaultReviewService) SubmitReview(ctx context.Context, userID, restaurantID string, rating int, text string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.NewAPIError(utils.KindValidation, "rating must be between 1 and 5")
	}
	if strings.TrimSpace(text) == "" {
		return nil, utils.NewAPIError(utils.KindValidation, "review text must not be empty")
	}
	if _, err := s.Restaurants.GetByID(restaurantID); err != nil {
		return nil, utils.WrapAPIError(utils.KindNotFound, "restaurant not found", err)
	}

	rev := &models.Review{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		UserID:       userID,
		Rating:       rating,
		Text:         text,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Insert(rev); err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not save review", err)
	}
	if err := s.Restaurants.ApplyReview(restaurantID, rating); err != nil {
		zap.L().Error("review: rating aggregate update failed", zap.String("restaurantId", restaurantID), zap.Error(err))
	}

	s.awardMilestones(userID)
	return rev, nil
}

// ListForRestaurant returns recent reviews, newest first.
func (s *DefaultReviewService) ListForRestaurant(ctx context.Context, restaurantID string, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	revs, err := s.Repo.GetByRestaurant(restaurantID, limit)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not load reviews", err)
	}
	return revs, nil
}

// awardMilestones checks review-count thresholds after a successful
// submit. Badge failures are logged, never surfaced to the reviewer.
func (s *DefaultReviewService) awardMilestones(userID string) {
	count, err := s.Repo.CountByUser(userID)
	if err != nil {
		zap.L().Warn("review: badge count lookup failed", zap.String("userId", userID), zap.Error(err))
		return
	}

	milestones := []struct {
		kind      string
		threshold int64
	}{
		{models.BadgeFirstReview, 1},
		{models.BadgeTopReviewer, 10},
	}
	for _, m := range milestones {
		if count < m.threshold {
			continue
		}
		has, err := s.Users.HasBadge(userID, m.kind)
		if err != nil || has {
			continue
		}
		badge := &models.Badge{
			ID:       uuid.New().String(),
			UserID:   userID,
			Kind:     m.kind,
			EarnedAt: time.Now().UTC(),
		}
		if err := s.Users.AwardBadge(badge); err != nil {
			zap.L().Warn("review: badge award failed", zap.String("userId", userID), zap.String("kind", m.kind), zap.Error(err))
		}
	}
}
