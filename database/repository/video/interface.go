package videoRepo

import (
	"context"

	"savora/models"
)

// VideoRepository defines storage operations for feed videos. FetchPage
// satisfies the feed service's Source contract: returning fewer than
// limit items signals the last page.
type VideoRepository interface {
	FetchPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error)
	GetByID(id string) (*models.VideoItem, error)
	Create(v *models.VideoItem) error
	IncrementLikeCount(id string, delta int) error
}
