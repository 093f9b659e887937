package commentRepo

import "savora/models"

// CommentRepository defines storage operations for video comments.
// FetchFlat returns comments un-threaded, newest first; threading is
// the comment service's job.
type CommentRepository interface {
	FetchFlat(videoID string) ([]models.Comment, error)
	GetByID(id string) (*models.Comment, error)
	Insert(c *models.Comment) error
}
