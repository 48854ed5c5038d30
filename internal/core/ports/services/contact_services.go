package services

import (
	"context"
	"time"

	"github.com/webgroup16/contacts_app/internal/core/domain"
	"github.com/webgroup16/contacts_app/internal/dto"
)

// ContactSvcFacade defines the contact operations exposed to handlers.
// Every operation is scoped to the requesting user.
type ContactSvcFacade interface {
	CreateContact(ctx context.Context, userID string, req dto.CreateContactRequest) (*domain.Contact, error)
	GetContactByID(ctx context.Context, userID string, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, userID string, skip int, limit int) ([]domain.Contact, error)
	UpdateContact(ctx context.Context, userID string, contactID string, req dto.CreateContactRequest) (*domain.Contact, error)
	DeleteContact(ctx context.Context, userID string, contactID string) error
	SearchContacts(ctx context.Context, userID string, query string) ([]domain.Contact, error)

	// ListUpcomingBirthdays returns contacts whose birthday falls within
	// [today, today+7d] on absolute calendar dates.
	ListUpcomingBirthdays(ctx context.Context, userID string, today time.Time) ([]domain.Contact, error)
}
