package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/envialo/shipping-portal/internal/core/domain"
)

// Session state lives in one hash per session under well-known field names.
// Key format: session:<uuid>
const keyPrefix = "session:"

const (
	fieldToken  = "token"
	fieldRole   = "role"
	fieldUserID = "user_id"
	fieldEmail  = "email"
)

// Store persists sessions in Redis with a sliding expiry. One hash per
// session keeps the clear operation atomic: a single DEL removes every
// field at once.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a Store. ttl bounds how long an idle session survives.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Init(ctx context.Context, sess domain.Session) (string, error) {
	id := uuid.NewString()
	key := keyPrefix + id

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		fieldToken:  sess.Token,
		fieldRole:   sess.Role,
		fieldUserID: sess.UserID,
		fieldEmail:  sess.Email,
	})
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("session init: %w", err)
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Session, error) {
	vals, err := s.client.HGetAll(ctx, keyPrefix+id).Result()
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	if len(vals) == 0 {
		return nil, domain.ErrSessionNotFound
	}

	userID, _ := strconv.Atoi(vals[fieldUserID])
	return &domain.Session{
		Token:  vals[fieldToken],
		Role:   vals[fieldRole],
		UserID: userID,
		Email:  vals[fieldEmail],
	}, nil
}

func (s *Store) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
