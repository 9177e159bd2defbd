package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Norwyx/supermarket-price-scraper/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// ipLimiter pairs a token-bucket limiter with its last activity time so
// idle entries can be purged.
type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	ipLimiters   = make(map[string]*ipLimiter)
	ipLimitersMu sync.Mutex
)

// RateLimiter limits each client IP to perMinute requests per minute,
// with a burst of perMinute/10 (minimum 10).
func RateLimiter(perMinute int) gin.HandlerFunc {
	burst := perMinute / 10
	if burst < 10 {
		burst = 10
	}
	limit := rate.Limit(float64(perMinute) / 60.0)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		ipLimitersMu.Lock()
		entry, exists := ipLimiters[ip]
		if !exists {
			entry = &ipLimiter{limiter: rate.NewLimiter(limit, burst)}
			ipLimiters[ip] = entry
		}
		entry.lastSeen = time.Now()
		ipLimitersMu.Unlock()

		if !entry.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many requests. Try again in a moment."))
			return
		}
		c.Next()
	}
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Periodically removes idle entries from the limiter map to prevent
// memory leaks from accumulating IPs that never return.

const (
	purgeInterval = 5 * time.Minute
	idleExpiry    = 10 * time.Minute
)

func init() {
	go purgeIdleLimiters()
}

func purgeIdleLimiters() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-idleExpiry)

		ipLimitersMu.Lock()
		purged := 0
		for ip, entry := range ipLimiters {
			if entry.lastSeen.Before(cutoff) {
				delete(ipLimiters, ip)
				purged++
			}
		}
		remaining := len(ipLimiters)
		ipLimitersMu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("entries_purged", purged).
				Int("entries_remaining", remaining).
				Msg("rate limiter map purged")
		}
	}
}
