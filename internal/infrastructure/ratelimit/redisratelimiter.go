package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

// RedisRateLimiter is a fixed-window counter. Every instance pointing at the
// same Redis shares the counters.
type RedisRateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := l.getKey(key, window)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment counter: %w", err)
	}

	// First hit in the window owns the TTL.
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window+time.Second).Err(); err != nil {
			return false, fmt.Errorf("failed to set counter ttl: %w", err)
		}
	}

	return count <= int64(limit), nil
}

func (l *RedisRateLimiter) getKey(identifier string, window time.Duration) string {
	bucket := l.now().Unix() / int64(window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", identifier, bucket)
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("redis connection established", "addr", cfg.GetAddr())

	return client, nil
}
