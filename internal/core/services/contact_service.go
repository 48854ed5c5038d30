package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/webgroup16/contacts_app/internal/apperrors"
	"github.com/webgroup16/contacts_app/internal/core/domain"
	portsrepo "github.com/webgroup16/contacts_app/internal/core/ports/repositories"
	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/dto"
)

// upcomingBirthdayWindow is the lookahead used by ListUpcomingBirthdays.
const upcomingBirthdayWindow = 7 * 24 * time.Hour

type contactService struct {
	contactRepo portsrepo.ContactRepository
}

// NewContactService creates a new contact service backed by the given repository.
func NewContactService(contactRepo portsrepo.ContactRepository) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) CreateContact(ctx context.Context, userID string, req dto.CreateContactRequest) (*domain.Contact, error) {
	birthday, err := req.ParseBirthday()
	if err != nil {
		return nil, fmt.Errorf("invalid birthday: %w", err)
	}

	contact := domain.Contact{
		ContactID:      uuid.NewString(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Birthday:       birthday,
		AdditionalInfo: req.AdditionalInfo,
		UserID:         userID,
	}

	return s.contactRepo.CreateContact(ctx, contact)
}

func (s *contactService) GetContactByID(ctx context.Context, userID string, contactID string) (*domain.Contact, error) {
	return s.contactRepo.FindContactByID(ctx, contactID, userID)
}

func (s *contactService) ListContacts(ctx context.Context, userID string, skip int, limit int) ([]domain.Contact, error) {
	return s.contactRepo.FindContacts(ctx, userID, limit, skip)
}

// UpdateContact replaces every field of the contact. A contact owned by a
// different user is reported as not found.
func (s *contactService) UpdateContact(ctx context.Context, userID string, contactID string, req dto.CreateContactRequest) (*domain.Contact, error) {
	birthday, err := req.ParseBirthday()
	if err != nil {
		return nil, fmt.Errorf("invalid birthday: %w", err)
	}

	contact := domain.Contact{
		ContactID:      contactID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Birthday:       birthday,
		AdditionalInfo: req.AdditionalInfo,
		UserID:         userID,
	}

	return s.contactRepo.UpdateContact(ctx, contact)
}

// DeleteContact removes the contact when the requesting user owns it.
// Deleting somebody else's contact reports not found, never silent success.
func (s *contactService) DeleteContact(ctx context.Context, userID string, contactID string) error {
	deleted, err := s.contactRepo.DeleteContact(ctx, contactID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *contactService) SearchContacts(ctx context.Context, userID string, query string) ([]domain.Contact, error) {
	return s.contactRepo.SearchContacts(ctx, userID, query)
}

// ListUpcomingBirthdays filters by the stored birthday falling inside
// [today, today+7d]. Stored years are not normalized, so a late-December
// window does not wrap into January.
func (s *contactService) ListUpcomingBirthdays(ctx context.Context, userID string, today time.Time) ([]domain.Contact, error) {
	start := today.Truncate(24 * time.Hour)
	end := start.Add(upcomingBirthdayWindow)
	return s.contactRepo.FindContactsWithBirthdayBetween(ctx, userID, start, end)
}
