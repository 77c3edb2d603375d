package services

import (
	"context"
	"fmt"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/app/repositories"
	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
)

// UserService defines the admin user management operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	ApproveUser(ctx context.Context, id int64) error
	DeclineUser(ctx context.Context, id int64) error
	DeleteUser(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// GetAllUsers retrieves all users for the admin dashboard
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}

	// The password hash never leaves the service layer
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// ApproveUser marks a user approved and active
func (s *userServiceImpl) ApproveUser(ctx context.Context, id int64) error {
	return s.setApproval(ctx, id, true)
}

// DeclineUser clears the approval and active flags
func (s *userServiceImpl) DeclineUser(ctx context.Context, id int64) error {
	return s.setApproval(ctx, id, false)
}

func (s *userServiceImpl) setApproval(ctx context.Context, id int64, approved bool) error {
	if id <= 0 {
		return apperrors.NewValidationError("User ID required")
	}

	if err := s.userRepo.SetApproval(ctx, id, approved); err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating user approval: %w", err)
	}
	return nil
}

// DeleteUser removes a user permanently
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("User ID required")
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
