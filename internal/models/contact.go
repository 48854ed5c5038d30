package models

import (
	"database/sql"
	"time"
)

// Contact is the database representation of a contact row.
type Contact struct {
	ContactID      string         `db:"contact_id"`
	FirstName      string         `db:"first_name"`
	LastName       string         `db:"last_name"`
	Email          string         `db:"email"`
	Phone          string         `db:"phone"`
	Birthday       time.Time      `db:"birthday"`
	AdditionalInfo sql.NullString `db:"additional_info"`
	UserID         string         `db:"user_id"`
}
