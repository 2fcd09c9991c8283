package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"restaurant-ordering/order-svc/internal/cart"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps one cart per session under "cart:<sessionID>".
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) Key(sessionID string) string {
	return "cart:" + sessionID
}

// Load returns an empty cart when the session has none yet.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	raw, err := s.Client.Get(ctx, s.Key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, err
	}

	c := cart.New()
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Save stores the cart and refreshes its expiry. An empty cart deletes the key.
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	if c == nil || c.IsEmpty() {
		return s.Clear(ctx, sessionID)
	}
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.Key(sessionID), payload, s.TTL).Err()
}

func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.Key(sessionID)).Err()
}

// RedisSessionStore remembers signed-out sessions until their token expires.
type RedisSessionStore struct {
	Client *redis.Client
	now    func() time.Time
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, now: time.Now}
}

func (s *RedisSessionStore) Key(sessionID string) string {
	return "session:revoked:" + sessionID
}

func (s *RedisSessionStore) Revoke(ctx context.Context, sessionID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.Client.Set(ctx, s.Key(sessionID), "1", ttl).Err()
}

func (s *RedisSessionStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.Client.Exists(ctx, s.Key(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
