package repositories

import (
	"context"
	"time"

	"github.com/webgroup16/contacts_app/internal/core/domain"
)

// ContactRepository defines persistence operations for contacts. All reads
// except the email pre-check are scoped to the owning user.
type ContactRepository interface {
	// CreateContact inserts a contact after checking the cross-tenant email
	// uniqueness constraint. Returns ErrDuplicate when the pre-check hits and
	// ErrConflict when a concurrent insert races past it at commit time.
	CreateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)

	// FindContactByID retrieves a contact owned by userID, or ErrNotFound.
	FindContactByID(ctx context.Context, contactID string, userID string) (*domain.Contact, error)

	// FindContacts lists the user's contacts with skip/limit pagination.
	FindContacts(ctx context.Context, userID string, limit int, offset int) ([]domain.Contact, error)

	// UpdateContact replaces every mutable field of a contact owned by the
	// user. Returns ErrNotFound when no such contact exists.
	UpdateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)

	// DeleteContact removes a contact owned by userID. The bool reports
	// whether a row was actually deleted.
	DeleteContact(ctx context.Context, contactID string, userID string) (bool, error)

	// SearchContacts matches the query substring against first name, last
	// name and email within the user's contacts.
	SearchContacts(ctx context.Context, userID string, query string) ([]domain.Contact, error)

	// FindContactsWithBirthdayBetween returns the user's contacts whose
	// stored birthday falls inside [start, end]. The comparison is on
	// absolute calendar dates; the stored year is not normalized.
	FindContactsWithBirthdayBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.Contact, error)
}
