package repositories

import (
	"context"

	"github.com/webgroup16/contacts_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Email is the lookup key for every mutate operation.
type UserRepository interface {
	// SaveUser inserts a new user row.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByEmail retrieves a user by email, or ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateRefreshToken overwrites the stored refresh token; an empty
	// token clears it.
	UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error

	// MarkConfirmed flips the confirmed flag to true.
	MarkConfirmed(ctx context.Context, email string) error

	// UpdateAvatarURL stores a new avatar URL and returns the updated user.
	UpdateAvatarURL(ctx context.Context, email string, avatarURL string) (*domain.User, error)

	// UpdatePassword overwrites the stored password hash.
	UpdatePassword(ctx context.Context, email string, hashedPassword string) error
}
