package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	fixed := time.Unix(1_700_000_000, 0)
	limiter.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "hit %d", i+1)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	ttl, err := client.TTL(ctx, limiter.getKey("10.0.0.1", time.Minute)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisRateLimiter_NewWindowResets(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	now := time.Unix(1_700_000_000, 0)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "ip", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	allowed, err = limiter.Allow(ctx, "ip", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	now = now.Add(time.Minute)
	allowed, err = limiter.Allow(ctx, "ip", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_KeyBucketsByWindow(t *testing.T) {
	limiter := NewRedisRateLimiter(nil)
	limiter.now = func() time.Time { return time.Unix(125, 0) }

	assert.Equal(t, "ratelimit:ip:2", limiter.getKey("ip", time.Minute))
	assert.Equal(t, "ratelimit:ip:12", limiter.getKey("ip", 10*time.Second))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, &config.RedisConfig{Host: "127.0.0.1", Port: 1}, logger.NewLogger())
	assert.ErrorContains(t, err, "failed to connect to redis")
}
