package http

import (
	"context"
	"time"

	"ticketdesk/internal/infrastructure/ratelimit"
	"ticketdesk/internal/interfaces/http/middleware"
)

// initServices sets up optional infrastructure that is not needed to serve
// requests, currently the Redis-backed rate limiter.
func (c *Container) initServices() error {
	if !c.cfg.RateLimit.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := ratelimit.NewRedisClient(ctx, &c.cfg.Redis, c.log)
	if err != nil {
		return err
	}
	c.redis = client

	c.rateLimiter = middleware.NewRateLimiter(
		ratelimit.NewRedisRateLimiter(client),
		c.cfg.RateLimit.Requests,
		time.Duration(c.cfg.RateLimit.WindowSeconds)*time.Second,
		c.log,
	)
	c.log.Infow("rate limiting enabled",
		"requests", c.cfg.RateLimit.Requests,
		"window_seconds", c.cfg.RateLimit.WindowSeconds)

	return nil
}

// Close releases connections owned by the container.
func (c *Container) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
