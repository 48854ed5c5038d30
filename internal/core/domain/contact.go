package domain

import "time"

// Contact represents a single address-book entry owned by a user.
// Email is unique across all contacts, not just per owner.
type Contact struct {
	ContactID      string    `json:"contactID"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Birthday       time.Time `json:"birthday"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
	UserID         string    `json:"userID"`
}
