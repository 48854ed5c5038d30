package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/webgroup16/contacts_app/internal/apperrors"
	"github.com/webgroup16/contacts_app/internal/core/domain"
	portsrepo "github.com/webgroup16/contacts_app/internal/core/ports/repositories"
	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/dto"
	"github.com/webgroup16/contacts_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service backed by the given repository.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Register creates a new unconfirmed account. The plaintext password is
// hashed here; the repository only ever sees the hash.
func (s *userService) Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hash,
		Role:           domain.RoleUser,
		Confirmed:      false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error {
	return s.userRepo.UpdateRefreshToken(ctx, email, refreshToken)
}

func (s *userService) ClearRefreshToken(ctx context.Context, email string) error {
	return s.userRepo.UpdateRefreshToken(ctx, email, "")
}

// ConfirmEmail flips the confirmed flag exactly once. Confirming an already
// confirmed account is reported as such, not treated as an error.
func (s *userService) ConfirmEmail(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user.Confirmed {
		return true, nil
	}
	if err := s.userRepo.MarkConfirmed(ctx, email); err != nil {
		return false, fmt.Errorf("failed to confirm email: %w", err)
	}
	return false, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, email string, avatarURL string) (*domain.User, error) {
	user, err := s.userRepo.UpdateAvatarURL(ctx, email, avatarURL)
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	return user, nil
}

func (s *userService) ResetPassword(ctx context.Context, email string, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, email, hash)
}
