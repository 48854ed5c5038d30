package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webgroup16/contacts_app/internal/apperrors"
	"github.com/webgroup16/contacts_app/internal/core/domain"
	portsrepo "github.com/webgroup16/contacts_app/internal/core/ports/repositories"
	"github.com/webgroup16/contacts_app/internal/models"
	"github.com/webgroup16/contacts_app/internal/utils/mapping"
)

// ContactRepository persists contacts in PostgreSQL.
type ContactRepository struct {
	BaseRepository
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{BaseRepository{Pool: pool}}
}

// Ensure ContactRepository implements the port.
var _ portsrepo.ContactRepository = (*ContactRepository)(nil)

const contactColumns = `contact_id, first_name, last_name, email, phone, birthday, additional_info, user_id`

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var m models.Contact
	err := row.Scan(
		&m.ContactID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Phone,
		&m.Birthday,
		&m.AdditionalInfo,
		&m.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan contact row: %w", err)
	}
	contact := mapping.ToDomainContact(m)
	return &contact, nil
}

func collectContacts(rows pgx.Rows) ([]domain.Contact, error) {
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var m models.Contact
		err := rows.Scan(
			&m.ContactID,
			&m.FirstName,
			&m.LastName,
			&m.Email,
			&m.Phone,
			&m.Birthday,
			&m.AdditionalInfo,
			&m.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, mapping.ToDomainContact(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", rows.Err())
	}
	return contacts, nil
}

// CreateContact inserts a contact inside one transaction. The email
// pre-check spans ALL contacts, not just the owner's; the uniqueness
// constraint backstops the race when a concurrent insert slips past it.
func (r *ContactRepository) CreateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM contacts WHERE email = $1);`, contact.Email).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check contact email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicate
	}

	m := mapping.ToModelContact(contact)
	insert := `
        INSERT INTO contacts (contact_id, first_name, last_name, email, phone, birthday, additional_info, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + contactColumns + `;
    `
	created, err := scanContact(tx.QueryRow(ctx, insert,
		m.ContactID,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Phone,
		m.Birthday,
		m.AdditionalInfo,
		m.UserID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *ContactRepository) FindContactByID(ctx context.Context, contactID string, userID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1 AND user_id = $2;`
	return scanContact(r.Pool.QueryRow(ctx, query, contactID, userID))
}

func (r *ContactRepository) FindContacts(ctx context.Context, userID string, limit int, offset int) ([]domain.Contact, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + contactColumns + `
        FROM contacts
        WHERE user_id = $1
        ORDER BY last_name, first_name
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	return collectContacts(rows)
}

// UpdateContact is a full-record replace scoped to the owning user.
func (r *ContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelContact(contact)
	query := `
        UPDATE contacts
        SET first_name = $1, last_name = $2, email = $3, phone = $4, birthday = $5, additional_info = $6
        WHERE contact_id = $7 AND user_id = $8
        RETURNING ` + contactColumns + `;
    `
	updated, err := scanContact(tx.QueryRow(ctx, query,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Phone,
		m.Birthday,
		m.AdditionalInfo,
		m.ContactID,
		m.UserID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteContact removes the contact when owned by userID. The bool reports
// whether a row was deleted; a foreign contact simply reports false.
func (r *ContactRepository) DeleteContact(ctx context.Context, contactID string, userID string) (bool, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM contacts WHERE contact_id = $1 AND user_id = $2;`, contactID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *ContactRepository) SearchContacts(ctx context.Context, userID string, query string) ([]domain.Contact, error) {
	pattern := "%" + query + "%"
	stmt := `
        SELECT ` + contactColumns + `
        FROM contacts
        WHERE user_id = $1
          AND (first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2)
        ORDER BY last_name, first_name;
    `
	rows, err := r.Pool.Query(ctx, stmt, userID, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	return collectContacts(rows)
}

// FindContactsWithBirthdayBetween compares stored birthdays against the
// absolute [start, end] range. Years are kept as stored, so a window
// crossing New Year never matches a January birthday from an earlier year.
func (r *ContactRepository) FindContactsWithBirthdayBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.Contact, error) {
	query := `
        SELECT ` + contactColumns + `
        FROM contacts
        WHERE user_id = $1 AND birthday BETWEEN $2 AND $3
        ORDER BY birthday;
    `
	rows, err := r.Pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming birthdays: %w", err)
	}
	return collectContacts(rows)
}
