package services

import (
	"context"

	"github.com/webgroup16/contacts_app/internal/core/domain"
	"github.com/webgroup16/contacts_app/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new unconfirmed account with a hashed password.
	Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// UpdateRefreshToken overwrites the stored refresh token for the user.
	UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error

	// ClearRefreshToken drops the stored refresh token, forcing a fresh login.
	ClearRefreshToken(ctx context.Context, email string) error

	// ConfirmEmail flips the confirmed flag exactly once. The bool reports
	// whether the account was already confirmed.
	ConfirmEmail(ctx context.Context, email string) (alreadyConfirmed bool, err error)

	// UpdateAvatar stores a new avatar URL and returns the updated user.
	UpdateAvatar(ctx context.Context, email string, avatarURL string) (*domain.User, error)

	// ResetPassword hashes and stores a new password for the user.
	ResetPassword(ctx context.Context, email string, newPassword string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
