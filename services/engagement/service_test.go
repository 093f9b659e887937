package engagement

import (
	"context"
	"errors"
	"testing"

	"savora/models"
	"savora/utils"
)

// fakeVideoRepo serves one video and lets tests fail the counter write.
type fakeVideoRepo struct {
	video      models.VideoItem
	incErr     error
	increments []int
}

func (f *fakeVideoRepo) FetchPage(ctx context.Context, limit, offset int, filter models.FeedFilter) ([]models.VideoItem, error) {
	return nil, nil
}

func (f *fakeVideoRepo) GetByID(id string) (*models.VideoItem, error) {
	if id != f.video.ID {
		return nil, errors.New("video not found")
	}
	v := f.video
	return &v, nil
}

func (f *fakeVideoRepo) Create(v *models.VideoItem) error { return nil }

func (f *fakeVideoRepo) IncrementLikeCount(id string, delta int) error {
	if f.incErr != nil {
		return f.incErr
	}
	f.increments = append(f.increments, delta)
	f.video.LikeCount += delta
	return nil
}

func TestLikeVideo_ReturnsUpdatedCount(t *testing.T) {
	repo := &fakeVideoRepo{video: models.VideoItem{ID: "v1", LikeCount: 4}}
	svc := &DefaultEngagementService{Videos: repo}

	count, err := svc.LikeVideo(context.Background(), "u1", "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 5 {
		t.Errorf("like count = %d, want 5", count)
	}
	if len(repo.increments) != 1 || repo.increments[0] != 1 {
		t.Errorf("repo increments = %v, want [1]", repo.increments)
	}
}

func TestUnlikeVideo_ReturnsUpdatedCount(t *testing.T) {
	repo := &fakeVideoRepo{video: models.VideoItem{ID: "v1", LikeCount: 4}}
	svc := &DefaultEngagementService{Videos: repo}

	count, err := svc.UnlikeVideo(context.Background(), "u1", "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("like count = %d, want 3", count)
	}
}

func TestLikeVideo_WriteFailureRollsCountBack(t *testing.T) {
	repo := &fakeVideoRepo{
		video:  models.VideoItem{ID: "v1", LikeCount: 4},
		incErr: errors.New("network down"),
	}
	svc := &DefaultEngagementService{Videos: repo}

	count, err := svc.LikeVideo(context.Background(), "u1", "v1")
	if err == nil {
		t.Fatal("expected error from failing counter write")
	}
	if utils.KindOf(err) != utils.KindTransient {
		t.Errorf("error kind = %v, want transient", utils.KindOf(err))
	}
	if count != 4 {
		t.Errorf("count after rollback = %d, want the stored value 4", count)
	}
	if repo.video.LikeCount != 4 {
		t.Errorf("stored count changed on failure: %d", repo.video.LikeCount)
	}
}

func TestLikeVideo_UnknownVideo(t *testing.T) {
	repo := &fakeVideoRepo{video: models.VideoItem{ID: "v1"}}
	svc := &DefaultEngagementService{Videos: repo}

	if _, err := svc.LikeVideo(context.Background(), "u1", "missing"); utils.KindOf(err) != utils.KindNotFound {
		t.Errorf("error kind = %v, want not found", utils.KindOf(err))
	}
}
