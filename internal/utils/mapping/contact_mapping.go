package mapping

import (
	"github.com/webgroup16/contacts_app/internal/core/domain"
	"github.com/webgroup16/contacts_app/internal/models"
)

// ToDomainContact converts a database contact model to its domain representation.
func ToDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		ContactID:      m.ContactID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Phone:          m.Phone,
		Birthday:       m.Birthday,
		AdditionalInfo: m.AdditionalInfo.String,
		UserID:         m.UserID,
	}
}

// ToModelContact converts a domain contact to its database model.
func ToModelContact(c domain.Contact) models.Contact {
	return models.Contact{
		ContactID:      c.ContactID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		Birthday:       c.Birthday,
		AdditionalInfo: nullString(c.AdditionalInfo),
		UserID:         c.UserID,
	}
}
