package dto

import (
	"time"

	"github.com/webgroup16/contacts_app/internal/core/domain"
)

// birthdayLayout is the wire format for contact birthdays.
const birthdayLayout = "2006-01-02"

// CreateContactRequest is the payload for creating a contact. Update uses
// the same shape since updates are full-record replaces.
type CreateContactRequest struct {
	FirstName      string `json:"firstName" binding:"required,max=20"`
	LastName       string `json:"lastName" binding:"required,max=20"`
	Email          string `json:"email" binding:"required,email,max=100"`
	Phone          string `json:"phone" binding:"required,max=15"`
	Birthday       string `json:"birthday" binding:"required,beforetoday"`
	AdditionalInfo string `json:"additionalInfo" binding:"max=250"`
}

// ParseBirthday parses the wire-format birthday into a date.
func (r CreateContactRequest) ParseBirthday() (time.Time, error) {
	return time.Parse(birthdayLayout, r.Birthday)
}

// ListContactsParams defines query parameters for listing contacts.
type ListContactsParams struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=100"`
}

// SearchContactsParams defines query parameters for contact search.
type SearchContactsParams struct {
	Query string `form:"query" binding:"required,min=1"`
}

// ContactResponse is the serialized contact record returned by the API.
type ContactResponse struct {
	ContactID      string `json:"contactID"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Birthday       string `json:"birthday"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// ToContactResponse converts a domain.Contact to its API representation.
func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID:      c.ContactID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		Birthday:       c.Birthday.Format(birthdayLayout),
		AdditionalInfo: c.AdditionalInfo,
	}
}

// ToContactListResponse converts a slice of domain contacts.
func ToContactListResponse(contacts []domain.Contact) []ContactResponse {
	out := make([]ContactResponse, len(contacts))
	for i := range contacts {
		out[i] = ToContactResponse(&contacts[i])
	}
	return out
}
