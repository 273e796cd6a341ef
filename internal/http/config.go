package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/madr/internal/demo"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Services
	Accounts AccountService
	Authors  AuthorService
	Books    BookService

	// Authentication
	AuthMiddleware gin.HandlerFunc // guards mutating routes
	LoginLimiter   LoginLimiter    // optional lockout on the token routes

	// Optional per-client throttle applied to every route
	Throttle *ClientThrottle

	// Demo mode (blocks writes)
	DemoMiddleware *demo.Middleware

	// Health checks
	Database Pinger
	Version  string
}

// LoginLimiter guards the token routes and is told about login outcomes.
type LoginLimiter interface {
	LoginRecorder
	Middleware() gin.HandlerFunc
}
