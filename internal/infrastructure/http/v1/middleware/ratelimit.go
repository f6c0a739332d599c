package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"farina/internal/core/apperror"
)

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	// Rate is the sustained request rate per client.
	Rate rate.Limit

	// Burst allows short spikes above Rate.
	Burst int

	// TTL evicts idle client buckets.
	TTL time.Duration
}

// DefaultRateLimitConfig suits a small back office behind one gateway.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Rate:  20,
		Burst: 40,
		TTL:   3 * time.Minute,
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a per-IP token bucket. Buckets idle longer than TTL are
// evicted lazily on each pass.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(cfg.Rate, cfg.Burst)}
			clients[ip] = cl
		}
		cl.lastSeen = now

		for key, other := range clients {
			if now.Sub(other.lastSeen) > cfg.TTL {
				delete(clients, key)
			}
		}
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			appErr := apperror.NewBusinessRule("RATE_LIMITED", "troppe richieste, riprovare tra poco")
			appErr.HTTPStatus = http.StatusTooManyRequests
			_ = c.Error(appErr)
			c.Abort()
			return
		}

		c.Next()
	}
}
