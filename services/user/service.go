package user

import (
	"context"
	"strings"
	"time"

	userRepo "savora/database/repository/user"
	"savora/models"
	"savora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and returns a signed token for it.
func (s *DefaultUserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Username) == "" {
		return nil, utils.NewAPIError(utils.KindValidation, "email and username are required")
	}
	if len(in.Password) < 8 {
		return nil, utils.NewAPIError(utils.KindValidation, "password must be at least 8 characters")
	}
	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleOwner {
		return nil, utils.NewAPIError(utils.KindValidation, "unknown role")
	}
	if existing, _ := s.Repo.GetByEmail(email); existing != nil {
		return nil, utils.NewAPIError(utils.KindValidation, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not hash password", err)
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not create user", err)
	}
	zap.L().Info("user registered", zap.String("userId", u.ID), zap.String("role", u.Role))

	return s.issueToken(u)
}

// Authenticate checks credentials and returns a signed token. The same
// message covers unknown email and wrong password.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, utils.NewAPIError(utils.KindNotAuthenticated, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAPIError(utils.KindNotAuthenticated, "invalid email or password")
	}
	return s.issueToken(u)
}

func (s *DefaultUserService) issueToken(u *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenLifetime)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not issue token", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}

// GetProfile returns the account by ID.
func (s *DefaultUserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindNotFound, "user not found", err)
	}
	return u, nil
}

// GetBadges lists the badges earned by the account.
func (s *DefaultUserService) GetBadges(ctx context.Context, id string) ([]models.Badge, error) {
	badges, err := s.Repo.GetBadges(id)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not load badges", err)
	}
	return badges, nil
}

// RegisterDevice stores the FCM token used for push delivery.
func (s *DefaultUserService) RegisterDevice(ctx context.Context, userID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return utils.NewAPIError(utils.KindValidation, "device token is required")
	}
	if err := s.Repo.SetFCMToken(userID, fcmToken); err != nil {
		return utils.WrapAPIError(utils.KindTransient, "could not register device", err)
	}
	return nil
}
