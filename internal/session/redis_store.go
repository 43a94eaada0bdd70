package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-registration/internal/model"
)

// RedisStore keeps sessions as JSON values under "<prefix>:<id>" so that
// several server instances can share them.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisStore wraps an existing client.
func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "session"
	}
	return &RedisStore{rdb: rdb, ttl: ttl, prefix: prefix}
}

func (r *RedisStore) key(id string) string { return r.prefix + ":" + id }

// Create opens a new session in the gallery state.
func (r *RedisStore) Create(ctx context.Context) (*model.Session, error) {
	s := newSession(time.Now().UTC())
	if err := r.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get loads and decodes a session.
func (r *RedisStore) Get(ctx context.Context, id string) (*model.Session, error) {
	bs, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var s model.Session
	if err := json.Unmarshal(bs, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Save encodes s and resets its expiry.
func (r *RedisStore) Save(ctx context.Context, s *model.Session) error {
	bs, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(s.ID), bs, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}
