package feed

import (
	"context"

	"savora/models"
)

// CategoryAll is the sentinel filter value meaning "no category restriction".
const CategoryAll = "all"

// Source is the upstream page fetcher the loader depends on. Returning
// fewer than limit items is the sentinel for "no more pages".
type Source interface {
	FetchPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error)
}

// FeedService assembles ranked, paginated video feeds.
type FeedService interface {
	GetPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error)
	StartSession(ctx context.Context, pageSize int, filter models.FeedFilter) (string, []models.VideoItem, bool, error)
	NextPage(ctx context.Context, sessionID string) ([]models.VideoItem, bool, error)
}
