package review

import (
	"context"
	"errors"
	"testing"

	"savora/models"
	"savora/utils"
)

type fakeReviewRepo struct {
	inserted []models.Review
	count    int64
	countErr error
}

func (f *fakeReviewRepo) Insert(rev *models.Review) error {
	f.inserted = append(f.inserted, *rev)
	return nil
}

func (f *fakeReviewRepo) GetByRestaurant(restaurantID string, limit int) ([]models.Review, error) {
	return f.inserted, nil
}

func (f *fakeReviewRepo) CountByUser(userID string) (int64, error) {
	return f.count, f.countErr
}

type fakeRestaurantRepo struct {
	applied []int
}

func (f *fakeRestaurantRepo) Create(rest *models.Restaurant) error { return nil }

func (f *fakeRestaurantRepo) GetByID(id string) (*models.Restaurant, error) {
	if id == "missing" {
		return nil, errors.New("not found")
	}
	return &models.Restaurant{ID: id}, nil
}

func (f *fakeRestaurantRepo) GetByOwner(ownerID string) ([]models.Restaurant, error) {
	return nil, nil
}

func (f *fakeRestaurantRepo) GetByCategory(category string, limit int) ([]models.Restaurant, error) {
	return nil, nil
}

func (f *fakeRestaurantRepo) ApplyReview(id string, rating int) error {
	f.applied = append(f.applied, rating)
	return nil
}

type fakeUserRepo struct {
	badges map[string]bool
}

func (f *fakeUserRepo) Create(u *models.User) error { return nil }

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return &models.User{ID: id}, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return nil, errors.New("not found")
}

func (f *fakeUserRepo) Update(u *models.User) error { return nil }

func (f *fakeUserRepo) AddFavorite(userID, restaurantID string) error { return nil }

func (f *fakeUserRepo) RemoveFavorite(userID, restaurantID string) error { return nil }

func (f *fakeUserRepo) SetFCMToken(userID, token string) error { return nil }

func (f *fakeUserRepo) AwardBadge(badge *models.Badge) error {
	if f.badges == nil {
		f.badges = map[string]bool{}
	}
	f.badges[badge.Kind] = true
	return nil
}

func (f *fakeUserRepo) GetBadges(userID string) ([]models.Badge, error) { return nil, nil }

func (f *fakeUserRepo) HasBadge(userID, kind string) (bool, error) {
	return f.badges[kind], nil
}

func newTestService() (*DefaultReviewService, *fakeReviewRepo, *fakeRestaurantRepo, *fakeUserRepo) {
	reviews := &fakeReviewRepo{}
	rests := &fakeRestaurantRepo{}
	users := &fakeUserRepo{}
	svc := &DefaultReviewService{Repo: reviews, Restaurants: rests, Users: users}
	return svc, reviews, rests, users
}

func TestSubmitReview_ValidationRejectsBeforeWrite(t *testing.T) {
	svc, reviews, rests, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name   string
		rating int
		text   string
	}{
		{"rating too low", 0, "fine"},
		{"rating too high", 6, "fine"},
		{"blank text", 4, "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitReview(ctx, "u1", "r1", tc.rating, tc.text)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if utils.KindOf(err) != utils.KindValidation {
				t.Errorf("error kind = %v, want validation", utils.KindOf(err))
			}
		})
	}
	if len(reviews.inserted) != 0 || len(rests.applied) != 0 {
		t.Errorf("invalid reviews reached storage: %d inserts, %d aggregate updates",
			len(reviews.inserted), len(rests.applied))
	}
}

func TestSubmitReview_PersistsAndFoldsRating(t *testing.T) {
	svc, reviews, rests, _ := newTestService()
	reviews.count = 1

	rev, err := svc.SubmitReview(context.Background(), "u1", "r1", 5, "great dosa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev.ID == "" || rev.Rating != 5 {
		t.Errorf("stored review malformed: %+v", rev)
	}
	if len(reviews.inserted) != 1 {
		t.Fatalf("got %d inserts, want 1", len(reviews.inserted))
	}
	if len(rests.applied) != 1 || rests.applied[0] != 5 {
		t.Errorf("rating not folded into aggregate: %v", rests.applied)
	}
}

func TestSubmitReview_UnknownRestaurant(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.SubmitReview(context.Background(), "u1", "missing", 4, "hm")
	if utils.KindOf(err) != utils.KindNotFound {
		t.Errorf("error kind = %v, want not-found", utils.KindOf(err))
	}
}

func TestSubmitReview_AwardsMilestoneBadges(t *testing.T) {
	svc, reviews, _, users := newTestService()
	ctx := context.Background()

	reviews.count = 1
	if _, err := svc.SubmitReview(ctx, "u1", "r1", 4, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !users.badges[models.BadgeFirstReview] {
		t.Errorf("first review badge not awarded")
	}
	if users.badges[models.BadgeTopReviewer] {
		t.Errorf("top reviewer badge awarded too early")
	}

	reviews.count = 10
	if _, err := svc.SubmitReview(ctx, "u1", "r1", 4, "tenth"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !users.badges[models.BadgeTopReviewer] {
		t.Errorf("top reviewer badge not awarded at threshold")
	}
}
