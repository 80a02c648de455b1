package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis so multiple instances can share them.
// Expiry is enforced by key TTL instead of application sweeps.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a RedisStore with the given token lifetime
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Create issues a token for the user
func (s *RedisStore) Create(userID uint) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Set(ctx, redisKeyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Validate returns the owning user id if the token key still exists
func (s *RedisStore) Validate(token string) (uint, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	value, err := s.client.Get(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		return 0, false
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}

// Destroy removes the token unconditionally
func (s *RedisStore) Destroy(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.client.Del(ctx, redisKeyPrefix+token)
}
