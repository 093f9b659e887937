package comment

import (
	"context"

	"savora/models"
)

// CommentService exposes threaded comments for feed videos.
type CommentService interface {
	GetTree(ctx context.Context, videoID string) ([]*models.CommentNode, error)
	PostComment(ctx context.Context, videoID, authorID, authorName, text, parentID string) (*models.Comment, error)
}
