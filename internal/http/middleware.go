package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	RequestIDHeader     = "X-Request-ID"
	ContextKeyRequestID = "request_id"
)

// RequestIDMiddleware propagates the caller's X-Request-ID or generates one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestIDMiddleware, or "-".
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(ContextKeyRequestID); id != "" {
		return id
	}
	return "-"
}

// ClientThrottle keeps one token bucket per client IP. Buckets idle for
// longer than idleTTL are dropped by the janitor.
type ClientThrottle struct {
	mu      sync.Mutex
	clients map[string]*throttleEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

type throttleEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewClientThrottle(rps float64, burst int) *ClientThrottle {
	return &ClientThrottle{
		clients: make(map[string]*throttleEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
	}
}

func (t *ClientThrottle) limiter(key string) *rate.Limiter {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if entry, ok := t.clients[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	lim := rate.NewLimiter(t.rps, t.burst)
	t.clients[key] = &throttleEntry{limiter: lim, lastSeen: now}
	return lim
}

// Allow consumes one token from the client's bucket.
func (t *ClientThrottle) Allow(clientIP string) bool {
	return t.limiter(clientIP).Allow()
}

func (t *ClientThrottle) cleanup() {
	cutoff := time.Now().Add(-t.idleTTL)

	t.mu.Lock()
	defer t.mu.Unlock()

	for key, entry := range t.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(t.clients, key)
		}
	}
}

// StartJanitor drops idle buckets every interval until ctx is done.
func (t *ClientThrottle) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.cleanup()
			}
		}
	}()
}

// Middleware answers 429 once a client runs out of tokens.
func (t *ClientThrottle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Detail: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
