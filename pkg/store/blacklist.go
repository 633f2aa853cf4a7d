package store

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist tracks revoked session tokens. Entries are write-once: a
// token is added on logout and only ever tested for membership afterwards.
type TokenBlacklist interface {
	BlacklistToken(token string) error
	IsTokenBlacklisted(token string) (bool, error)
}

// RedisTokenBlacklist shares revocations across instances through a Redis
// set. Memory satisfies the same interface for single-instance deployments.
type RedisTokenBlacklist struct {
	client *redis.Client
	key    string
}

// NewRedisTokenBlacklist connects to Redis and stores revoked tokens under
// the given set key (defaults to "audira:tokens:blacklist").
func NewRedisTokenBlacklist(addr, password, key string) *RedisTokenBlacklist {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "audira:tokens:blacklist"
	}
	return &RedisTokenBlacklist{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		key: key,
	}
}

// BlacklistToken adds the token to the shared set.
func (b *RedisTokenBlacklist) BlacklistToken(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return b.client.SAdd(ctx, b.key, token).Err()
}

// IsTokenBlacklisted tests set membership. On Redis failure the error is
// surfaced so callers can fail closed.
func (b *RedisTokenBlacklist) IsTokenBlacklisted(token string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return b.client.SIsMember(ctx, b.key, token).Result()
}
