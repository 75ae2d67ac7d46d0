package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smsportal/console-gateway/internal/core/ports"
)

const redisKeyPrefix = "console:session:"

// RedisBackend keeps each browser session in one Redis hash whose TTL slides
// forward on every read and write.
// Key format: console:session:<session_id>
type RedisBackend struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBackend wraps client. A non-positive ttl disables expiry.
func NewRedisBackend(client *redis.Client, ttl time.Duration) *RedisBackend {
	return &RedisBackend{client: client, ttl: ttl}
}

// ForSession returns the store of one browser session.
func (b *RedisBackend) ForSession(sessionID string) ports.SessionStore {
	return &redisStore{backend: b, key: redisKeyPrefix + sessionID}
}

// Clear drops every entry of a browser session.
func (b *RedisBackend) Clear(ctx context.Context, sessionID string) (err error) {
	defer func(start time.Time) { observe(BackendRedis, "clear", start, err) }(time.Now())

	if err = b.client.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis session clear: %w", err)
	}
	return nil
}

func (b *RedisBackend) touch(ctx context.Context, p redis.Pipeliner, key string) {
	if b.ttl > 0 {
		p.Expire(ctx, key, b.ttl)
	}
}

type redisStore struct {
	backend *RedisBackend
	key     string
}

func (s *redisStore) Get(ctx context.Context, field string) (value string, found bool, err error) {
	defer func(start time.Time) { observe(BackendRedis, "get", start, err) }(time.Now())

	var get *redis.StringCmd
	_, err = s.backend.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		get = p.HGet(ctx, s.key, field)
		s.backend.touch(ctx, p, s.key)
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis session get %q: %w", field, err)
	}
	return get.Val(), true, nil
}

func (s *redisStore) Set(ctx context.Context, field, value string) (err error) {
	defer func(start time.Time) { observe(BackendRedis, "set", start, err) }(time.Now())

	_, err = s.backend.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, s.key, field, value)
		s.backend.touch(ctx, p, s.key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis session set %q: %w", field, err)
	}
	return nil
}

func (s *redisStore) Remove(ctx context.Context, field string) (err error) {
	defer func(start time.Time) { observe(BackendRedis, "remove", start, err) }(time.Now())

	if err = s.backend.client.HDel(ctx, s.key, field).Err(); err != nil {
		return fmt.Errorf("redis session remove %q: %w", field, err)
	}
	return nil
}
