package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// LoginRateLimiter is a fixed-window counter per client IP backed by
// Redis. It only guards the login endpoint.
type LoginRateLimiter struct {
	client   *redis.Client
	limit    int
	window   time.Duration
	keybase  string
}

func NewLoginRateLimiter(client *redis.Client, limit int, window time.Duration) *LoginRateLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}

	return &LoginRateLimiter{
		client:  client,
		limit:   limit,
		window:  window,
		keybase: "tvar:ratelimit:login:",
	}
}

func (l *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		key := l.keybase + c.ClientIP()

		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			// do not block logins when Redis is unavailable
			c.Next()
			return
		}
		if count == 1 {
			l.client.Expire(ctx, key, l.window)
		}

		if count > int64(l.limit) {
			ttl, _ := l.client.TTL(ctx, key).Result()
			c.Header("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too many login attempts",
				"message": fmt.Sprintf("Try again in %v", ttl.Round(time.Second)),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
