package userRepo

import "savora/models"

// UserRepository defines storage operations for accounts.
type UserRepository interface {
	Create(u *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(u *models.User) error
	AddFavorite(userID, restaurantID string) error
	RemoveFavorite(userID, restaurantID string) error
	SetFCMToken(userID, token string) error
	AwardBadge(badge *models.Badge) error
	GetBadges(userID string) ([]models.Badge, error)
	HasBadge(userID, kind string) (bool, error)
}
