package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

type sessionRepository struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewSessionRepository keeps sessions as JSON under prefix+"session:"+hash
// with a TTL matching their expiry, so Redis drops them on its own.
func NewSessionRepository(client redis.UniversalClient, prefix string) repository.SessionRepository {
	return &sessionRepository{client: client, prefix: prefix + sessionPrefix, now: time.Now}
}

func (r *sessionRepository) key(tokenHash string) string {
	return r.prefix + tokenHash
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return domain.ErrSessionExpired
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.client.Set(ctx, r.key(session.TokenHash), payload, ttl).Err()
}

func (r *sessionRepository) GetByToken(ctx context.Context, tokenHash string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, r.key(tokenHash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var s domain.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, tokenHash string) error {
	n, err := r.client.Del(ctx, r.key(tokenHash)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
