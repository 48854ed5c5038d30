package repositories

import (
	"context"

	"github.com/webgroup16/contacts_app/internal/core/domain"
)

// UserCache is the look-aside cache mapping email to a serialized user
// snapshot. Entries expire by TTL only; there is no invalidate-on-write, so
// reads may be stale until the entry expires. Concurrent misses may each
// rewrite the entry; last-write-wins is fine since snapshots are immutable
// within the TTL window.
type UserCache interface {
	// GetUser returns the cached snapshot for email, or (nil, nil) on miss.
	GetUser(ctx context.Context, email string) (*domain.User, error)

	// SetUser stores a snapshot for the configured TTL.
	SetUser(ctx context.Context, user *domain.User) error
}
