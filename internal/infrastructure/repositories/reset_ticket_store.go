package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mynkprtp/movieApi/domain"
)

// ResetTicketStoreImpl implements domain.ResetTicketStore using Redis.
// Tickets expire on their own via the key TTL; a consumed ticket is deleted
// so it cannot authorize a second password change.
type ResetTicketStoreImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewResetTicketStore creates a new reset ticket store
func NewResetTicketStore(client *redis.Client, ttl time.Duration) domain.ResetTicketStore {
	return &ResetTicketStoreImpl{
		client: client,
		prefix: "reset:",
		ttl:    ttl,
	}
}

// Issue implements domain.ResetTicketStore. A new ticket replaces any
// outstanding one for the same email.
func (s *ResetTicketStoreImpl) Issue(ctx context.Context, email string) (string, error) {
	ticket := uuid.NewString()
	if err := s.client.Set(ctx, s.prefix+email, ticket, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store reset ticket: %w", err)
	}
	return ticket, nil
}

// Consume implements domain.ResetTicketStore
func (s *ResetTicketStoreImpl) Consume(ctx context.Context, email, ticket string) error {
	key := s.prefix + email
	stored, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrResetNotAllowed
	}
	if err != nil {
		return fmt.Errorf("failed to read reset ticket: %w", err)
	}
	if stored != ticket {
		return domain.ErrResetNotAllowed
	}
	return s.client.Del(ctx, key).Err()
}
