package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/repository"
)

// AuthService handles the login-by-id identity boundary.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Login returns the user a session should be opened for.
func (s *AuthService) Login(ctx context.Context, userID uint64) (*models.User, error) {
	return s.GetUser(ctx, userID)
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrUserNotFound, "user")
	}

	return user, nil
}

// ListUsers lists every user for the login chooser.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
