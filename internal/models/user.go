package models

import (
	"database/sql"
	"time"
)

// User is the database representation of a user row.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	Email          string         `db:"email"`
	HashedPassword string         `db:"hashed_password"`
	AvatarURL      sql.NullString `db:"avatar_url"`
	RefreshToken   sql.NullString `db:"refresh_token"`
	Role           string         `db:"role"`
	Confirmed      bool           `db:"confirmed"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
