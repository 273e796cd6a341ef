package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/madr/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(auth.SecurityHeadersMiddleware())

	if cfg.Throttle != nil {
		router.Use(cfg.Throttle.Middleware())
	}
	if cfg.DemoMiddleware != nil {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	requireAuth := cfg.AuthMiddleware
	if requireAuth == nil {
		// Without an authenticator every protected route is closed
		requireAuth = func(c *gin.Context) {
			respondError(c, auth.ErrInvalidCredential)
		}
	}

	var recorder LoginRecorder
	loginGuard := []gin.HandlerFunc{}
	if cfg.LoginLimiter != nil {
		recorder = cfg.LoginLimiter
		loginGuard = append(loginGuard, cfg.LoginLimiter.Middleware())
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	accounts := NewAccountsController(cfg.Accounts, recorder)
	authors := NewAuthorsController(cfg.Authors)
	books := NewBooksController(cfg.Books)
	demoStatus := NewDemoController(cfg.DemoMiddleware)

	// Health endpoints
	router.GET("/", health.Root)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)
	router.GET("/demo/status", demoStatus.GetStatus)

	// Account endpoints, served under both prefixes
	for _, prefix := range []string{"/contas", "/user"} {
		group := router.Group(prefix)
		group.POST("/", accounts.Register)
		group.PUT("/:id", requireAuth, accounts.Update)
		group.DELETE("/:id", requireAuth, accounts.Delete)
	}

	// Token endpoints
	for _, path := range []string{"/token", "/user/token"} {
		router.POST(path, append(loginGuard, accounts.Login)...)
	}
	router.POST("/refresh-token", requireAuth, accounts.Refresh)
	router.POST("/user/refresh-token", requireAuth, accounts.Refresh)

	// Author endpoints
	romancistas := router.Group("/romancistas")
	romancistas.GET("/", authors.Search)
	romancistas.POST("/", requireAuth, authors.Create)
	romancistas.GET("/:id", authors.Get)
	romancistas.PATCH("/:id", requireAuth, authors.Update)
	romancistas.DELETE("/:id", requireAuth, authors.Delete)

	// Book endpoints
	livros := router.Group("/livros")
	livros.GET("/", books.Search)
	livros.POST("/", requireAuth, books.Create)
	livros.GET("/:id", books.Get)
	livros.PATCH("/:id", requireAuth, books.Update)
	livros.DELETE("/:id", requireAuth, books.Delete)

	return router
}
