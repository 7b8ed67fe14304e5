package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/screenpulse/internal/domain/dto"
	"github.com/guttosm/screenpulse/internal/logger"
)

// idleTTL is how long an idle client's bucket is kept before eviction.
const idleTTL = 10 * time.Minute

// client is the token bucket of one IP.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	interval  time.Duration
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		clients:  make(map[string]*client),
		interval: window / time.Duration(limit),
		burst:    limit,
		now:      time.Now,
	}
}

// allow takes one token from ip's bucket.
func (rl *rateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= idleTTL {
		for k, cl := range rl.clients {
			if now.Sub(cl.lastSeen) >= idleTTL {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rate.Every(rl.interval), rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// retryAfter is the time for one token to refill, in whole seconds.
func (rl *rateLimiter) retryAfter() string {
	secs := int(math.Ceil(rl.interval.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// RateLimiter allows each client IP a burst of limit requests, refilled
// evenly over window, and answers 429 with an ErrorResponse once the
// bucket is empty. A non-positive limit disables limiting.
//
// State is per process and in memory.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if window <= 0 {
		window = time.Minute
	}
	rl := newRateLimiter(limit, window)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.allow(ip) {
			logger.L().Warn().
				Str("client_ip", ip).
				Str("path", c.Request.URL.Path).
				Msg("rate limit exceeded")
			c.Header("Retry-After", rl.retryAfter())
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponse("Too many requests", errors.New("rate limit exceeded")))
			return
		}
		c.Next()
	}
}
