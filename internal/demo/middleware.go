package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const msgDemoMode = "This action is disabled in demo mode"

// Middleware blocks write operations in demo mode.
// Read-only operations (GET) are always allowed, as are the token routes so
// visitors can still try the login flow.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a demo mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": msgDemoMode})
	}
}

// writableSuffixes are the non-GET routes left open in demo mode, matched
// against the path end so the /user aliases are covered too.
var writableSuffixes = []string{"/token", "/refresh-token"}

// WritableRoutes lists the non-GET routes that stay open in demo mode.
func WritableRoutes() []string {
	return append([]string(nil), writableSuffixes...)
}

// isAllowedPath reports whether a non-GET request may pass in demo mode.
func isAllowedPath(path string) bool {
	for _, suffix := range writableSuffixes {
		if strings.HasSuffix(strings.TrimSuffix(path, "/"), suffix) {
			return true
		}
	}
	return false
}
