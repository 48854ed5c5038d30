package dto

import (
	"time"

	"github.com/webgroup16/contacts_app/internal/core/domain"
)

// SignupRequest is the payload for account registration.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=150"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// RequestEmail carries the email address for password-reset requests.
type RequestEmail struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginRequest is the form-encoded login payload. The username field
// carries the account email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ResetPasswordRequest is the form-encoded payload posted by the reset page.
type ResetPasswordRequest struct {
	Token       string `form:"token" binding:"required"`
	NewPassword string `form:"new_password" binding:"required,min=6,max=72"`
}

// UserResponse is the serialized user record returned by the API.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarURL,omitempty"`
	Role      string    `json:"role"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Role:      string(u.Role),
		Confirmed: u.Confirmed,
		CreatedAt: u.CreatedAt,
	}
}
