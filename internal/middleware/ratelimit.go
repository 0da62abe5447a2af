// Package middleware provides HTTP middleware for the graphrag API.
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/graphrag/internal/metrics"
)

const (
	// maxClients bounds the number of tracked client buckets.
	maxClients = 100_000

	staleAfter    = 10 * time.Minute
	sweepInterval = 5 * time.Minute
)

// RateLimiter is a per-client token bucket limiter.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*tokenBucket
	rate    float64
	burst   float64
	now     func() time.Time
}

type tokenBucket struct {
	tokens float64
	seen   time.Time
}

// NewRateLimiter creates a RateLimiter allowing ratePerSec sustained requests with the
// given burst. Stale buckets are swept in the background until ctx is cancelled.
func NewRateLimiter(ctx context.Context, ratePerSec, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*tokenBucket),
		rate:    float64(ratePerSec),
		burst:   float64(burst),
		now:     time.Now,
	}
	go rl.sweep(ctx)

	return rl
}

// Allow consumes one token for key, reporting whether the request may proceed.
// A new key is rejected when the client table is full.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	b, ok := rl.clients[key]
	if !ok {
		if len(rl.clients) >= maxClients {
			return false
		}

		b = &tokenBucket{tokens: rl.burst, seen: now}
		rl.clients[key] = b
	}

	b.tokens += now.Sub(b.seen).Seconds() * rl.rate
	if b.tokens > rl.burst {
		b.tokens = rl.burst
	}
	b.seen = now

	if b.tokens < 1 {
		return false
	}

	b.tokens--

	return true
}

func (rl *RateLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for key, b := range rl.clients {
				if now.Sub(b.seen) > staleAfter {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Handler returns Gin middleware keyed on the client IP. The router disables
// trusted proxies, so ClientIP is the socket peer.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			metrics.ErrorsTotal.WithLabelValues(ErrCodeRateLimited).Inc()
			respondError(c, http.StatusTooManyRequests, ErrCodeRateLimited, "rate limit exceeded")

			return
		}

		c.Next()
	}
}
