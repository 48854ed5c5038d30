package domain

import "time"

// Role is the access level assigned to a user account.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// User represents an account holder in the domain.
type User struct {
	UserID         string    `json:"userID"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	AvatarURL      string    `json:"avatarURL,omitempty"`
	RefreshToken   string    `json:"-"`
	Role           Role      `json:"role"`
	Confirmed      bool      `json:"confirmed"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
