package auth

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/madr/internal/config"
)

// LoginLimiter locks out a (client IP, username) pair after too many failed
// logins inside a window.
type LoginLimiter struct {
	mu              sync.Mutex
	attempts        map[string]*attemptRecord
	maxAttempts     int
	window          time.Duration
	lockoutDuration time.Duration
	now             func() time.Time
	stop            chan struct{}
	stopOnce        sync.Once
}

type attemptRecord struct {
	count        int
	firstAttempt time.Time
	lockedUntil  time.Time
}

// NewLoginLimiter creates a limiter from the auth config and starts its
// cleanup goroutine. Call Stop when done.
func NewLoginLimiter(cfg config.Auth) *LoginLimiter {
	if cfg.MaxLoginAttempts <= 0 {
		cfg.MaxLoginAttempts = 5
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = 15 * time.Minute
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = 30 * time.Minute
	}

	ll := &LoginLimiter{
		attempts:        make(map[string]*attemptRecord),
		maxAttempts:     cfg.MaxLoginAttempts,
		window:          cfg.RateLimitWindow,
		lockoutDuration: cfg.LockoutDuration,
		now:             time.Now,
		stop:            make(chan struct{}),
	}

	go ll.cleanupLoop(5 * time.Minute)

	return ll
}

// Stop stops the background cleanup goroutine.
func (ll *LoginLimiter) Stop() {
	ll.stopOnce.Do(func() { close(ll.stop) })
}

func key(ip, username string) string {
	return ip + ":" + username
}

// Allow reports whether a login attempt may proceed and, if not, how long
// until the lockout expires.
func (ll *LoginLimiter) Allow(ip, username string) (bool, time.Duration) {
	now := ll.now()

	ll.mu.Lock()
	defer ll.mu.Unlock()

	record, exists := ll.attempts[key(ip, username)]
	if !exists {
		return true, 0
	}
	if now.Before(record.lockedUntil) {
		return false, record.lockedUntil.Sub(now)
	}
	return true, 0
}

// RecordFailure counts a failed login and reports whether it triggered a lockout.
func (ll *LoginLimiter) RecordFailure(ip, username string) (bool, time.Duration) {
	k := key(ip, username)
	now := ll.now()

	ll.mu.Lock()
	defer ll.mu.Unlock()

	record, exists := ll.attempts[k]
	if !exists || now.Sub(record.firstAttempt) > ll.window {
		record = &attemptRecord{firstAttempt: now}
		ll.attempts[k] = record
	}

	record.count++
	if record.count >= ll.maxAttempts {
		record.lockedUntil = now.Add(ll.lockoutDuration)
		return true, ll.lockoutDuration
	}

	return false, 0
}

// RecordSuccess forgets earlier failures for the pair.
func (ll *LoginLimiter) RecordSuccess(ip, username string) {
	ll.mu.Lock()
	delete(ll.attempts, key(ip, username))
	ll.mu.Unlock()
}

func (ll *LoginLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ll.cleanup()
		case <-ll.stop:
			return
		}
	}
}

// cleanup drops records whose window and lockout have both passed.
func (ll *LoginLimiter) cleanup() {
	now := ll.now()

	ll.mu.Lock()
	defer ll.mu.Unlock()

	for k, record := range ll.attempts {
		windowOver := now.Sub(record.firstAttempt) > ll.window
		lockoutOver := !now.Before(record.lockedUntil)
		if windowOver && lockoutOver {
			delete(ll.attempts, k)
		}
	}
}

// Middleware rejects login attempts from locked out pairs with 429. It reads
// the username form field, which carries the email.
func (ll *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		if username == "" {
			c.Next()
			return
		}

		allowed, retryAfter := ll.Allow(c.ClientIP(), username)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds()+0.5)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": "too many login attempts",
			})
			return
		}

		c.Next()
	}
}
