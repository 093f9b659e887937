package comment

import (
	"context"
	"strings"

	commentRepo "savora/database/repository/comment"
	videoRepo "savora/database/repository/video"
	"savora/models"
	"savora/services/notification"
	"savora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCommentService is the production implementation.
type DefaultCommentService struct {
	Repo            commentRepo.CommentRepository
	VideoRepo       videoRepo.VideoRepository
	NotificationSvc notification.NotificationService
}

// GetTree fetches the flat comment list and threads it.
func (s *DefaultCommentService) GetTree(ctx context.Context, videoID string) ([]*models.CommentNode, error) {
	flat, err := s.Repo.FetchFlat(videoID)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not load comments", err)
	}
	return BuildTree(flat), nil
}

// PostComment validates and stores a comment. Empty text is rejected
// before any remote call; reply depth is capped here, at creation, so
// the tree builder never needs to care.
func (s *DefaultCommentService) PostComment(ctx context.Context, videoID, authorID, authorName, text, parentID string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, utils.NewAPIError(utils.KindValidation, "comment text must not be empty")
	}

	if _, err := s.VideoRepo.GetByID(videoID); err != nil {
		return nil, utils.WrapAPIError(utils.KindNotFound, "video not found", err)
	}

	depth := 0
	var parent *models.Comment
	if parentID != "" {
		p, err := s.Repo.GetByID(parentID)
		if err != nil {
			return nil, utils.WrapAPIError(utils.KindNotFound, "parent comment not found", err)
		}
		if p.VideoID != videoID {
			return nil, utils.NewAPIError(utils.KindValidation, "parent comment belongs to another video")
		}
		depth = p.Depth + 1
		if depth > models.MaxCommentDepth {
			return nil, utils.NewAPIError(utils.KindValidation, "reply depth limit reached")
		}
		parent = p
	}

	c := &models.Comment{
		ID:         uuid.New().String(),
		VideoID:    videoID,
		ParentID:   parentID,
		Depth:      depth,
		Text:       text,
		AuthorID:   authorID,
		AuthorName: authorName,
	}
	if err := s.Repo.Insert(c); err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not post comment", err)
	}

	if parent != nil && s.NotificationSvc != nil && parent.AuthorID != authorID {
		body := authorName + " replied to your comment"
		if err := s.NotificationSvc.SendPush(ctx, parent.AuthorID, "New reply", body, map[string]string{"commentId": c.ID}); err != nil {
			zap.L().Warn("comment: reply push failed", zap.String("commentId", c.ID), zap.Error(err))
		}
	}
	return c, nil
}
