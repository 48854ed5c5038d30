package mapping

import (
	"database/sql"

	"github.com/webgroup16/contacts_app/internal/core/domain"
	"github.com/webgroup16/contacts_app/internal/models"
)

// ToDomainUser converts a database user model to its domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		AvatarURL:      m.AvatarURL.String,
		RefreshToken:   m.RefreshToken.String,
		Role:           domain.Role(m.Role),
		Confirmed:      m.Confirmed,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToModelUser converts a domain user to its database model.
func ToModelUser(u domain.User) models.User {
	return models.User{
		UserID:         u.UserID,
		Username:       u.Username,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		AvatarURL:      nullString(u.AvatarURL),
		RefreshToken:   nullString(u.RefreshToken),
		Role:           string(u.Role),
		Confirmed:      u.Confirmed,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
