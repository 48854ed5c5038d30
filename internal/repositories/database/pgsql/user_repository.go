package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webgroup16/contacts_app/internal/apperrors"
	"github.com/webgroup16/contacts_app/internal/core/domain"
	portsrepo "github.com/webgroup16/contacts_app/internal/core/ports/repositories"
	"github.com/webgroup16/contacts_app/internal/models"
	"github.com/webgroup16/contacts_app/internal/utils/mapping"
)

// UserRepository persists users in PostgreSQL.
type UserRepository struct {
	BaseRepository
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{BaseRepository{Pool: pool}}
}

// Ensure UserRepository implements the port.
var _ portsrepo.UserRepository = (*UserRepository)(nil)

const userColumns = `user_id, username, email, hashed_password, avatar_url, refresh_token, role, confirmed, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.HashedPassword,
		&m.AvatarURL,
		&m.RefreshToken,
		&m.Role,
		&m.Confirmed,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, hashed_password, avatar_url, refresh_token, role, confirmed, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.HashedPassword,
		m.AvatarURL,
		m.RefreshToken,
		m.Role,
		m.Confirmed,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(r.Pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error {
	query := `
        UPDATE users
        SET refresh_token = NULLIF($1, ''), updated_at = $2
        WHERE email = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, refreshToken, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) MarkConfirmed(ctx context.Context, email string) error {
	query := `
        UPDATE users
        SET confirmed = TRUE, updated_at = $1
        WHERE email = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to mark user confirmed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateAvatarURL(ctx context.Context, email string, avatarURL string) (*domain.User, error) {
	query := `
        UPDATE users
        SET avatar_url = $1, updated_at = $2
        WHERE email = $3
        RETURNING ` + userColumns + `;
    `
	return scanUser(r.Pool.QueryRow(ctx, query, avatarURL, time.Now(), email))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email string, hashedPassword string) error {
	query := `
        UPDATE users
        SET hashed_password = $1, updated_at = $2
        WHERE email = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, hashedPassword, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
