package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webgroup16/contacts_app/internal/core/domain"
	portsrepo "github.com/webgroup16/contacts_app/internal/core/ports/repositories"
)

// NewRedisClient creates and pings a Redis client.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// UserCacheRepository implements the look-aside user cache over Redis.
// Values are JSON snapshots of the domain user keyed by email; entries
// expire by TTL only and are never invalidated on write.
type UserCacheRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewUserCacheRepository creates a user cache with a fixed TTL.
func NewUserCacheRepository(client *redis.Client, ttl time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		prefix: "user:",
		ttl:    ttl,
	}
}

var _ portsrepo.UserCache = (*UserCacheRepository)(nil)

// GetUser returns the cached snapshot for email, or (nil, nil) on miss.
func (r *UserCacheRepository) GetUser(ctx context.Context, email string) (*domain.User, error) {
	data, err := r.client.Get(ctx, r.prefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user cache: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached user: %w", err)
	}
	return &user, nil
}

// SetUser stores a snapshot for the configured TTL.
func (r *UserCacheRepository) SetUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user for cache: %w", err)
	}
	return r.client.Set(ctx, r.prefix+user.Email, data, r.ttl).Err()
}
