package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/infrastructure/ratelimit"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// RateLimiter enforces a per client IP request cap.
type RateLimiter struct {
	limiter ratelimit.Limiter
	limit   int
	window  time.Duration
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, limit int, window time.Duration, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		limit:   limit,
		window:  window,
		logger:  log,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP(), rl.limit, rl.window)
		if err != nil {
			// Fail open when the counter store is unavailable.
			rl.logger.Warnw("rate limiter unavailable", "error", err, "request_id", GetRequestID(c))
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
