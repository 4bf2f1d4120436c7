package service

import (
	"context"
	"database/sql"
	"errors"

	"campus-quiz/internal/domain"
	"campus-quiz/internal/dto"
	"campus-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines the interface for user profile operations.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	UpdateName(ctx context.Context, userID, name string) (*dto.UserProfileResponse, error)
	UpdatePassword(ctx context.Context, userID string, req *dto.UpdatePasswordRequest) error
}

type userServiceImpl struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}
	resp := dto.NewUserProfileResponse(user)
	return &resp, nil
}

func (s *userServiceImpl) UpdateName(ctx context.Context, userID, name string) (*dto.UserProfileResponse, error) {
	if err := s.userRepo.UpdateName(ctx, userID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user not found")
		}
		return nil, domain.NewInternalError("failed to update name", err)
	}
	logger.Get().Info("User renamed", zap.String("userID", userID))
	return s.GetProfile(ctx, userID)
}

// UpdatePassword verifies the current password before replacing the hash.
// Accounts created through Google have no password and cannot set one here.
func (s *userServiceImpl) UpdatePassword(ctx context.Context, userID string, req *dto.UpdatePasswordRequest) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return domain.NewNotFoundError("user not found")
	}
	if user.PasswordHash == "" {
		return domain.NewValidationError("account has no local password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return domain.NewInvalidCredentialsError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewInternalError("failed to hash password", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("user not found")
		}
		return domain.NewInternalError("failed to update password", err)
	}

	logger.Get().Info("User password updated", zap.String("userID", userID))
	return nil
}
