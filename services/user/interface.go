package user

import (
	"context"

	"savora/models"
)

// RegisterInput carries the fields accepted at signup.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// AuthResult is what login and registration hand back.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService covers accounts: signup, login, profile and device tokens.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, id string) (*models.User, error)
	GetBadges(ctx context.Context, id string) ([]models.Badge, error)
	RegisterDevice(ctx context.Context, userID, fcmToken string) error
}
