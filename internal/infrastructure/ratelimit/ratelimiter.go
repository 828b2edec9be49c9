package ratelimit

import (
	"context"
	"time"
)

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	// Allow records a hit for key and reports whether it is within limit for
	// the current window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
