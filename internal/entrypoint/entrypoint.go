package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/madr/internal/auth"
	"github.com/mrlokans/madr/internal/config"
	"github.com/mrlokans/madr/internal/database"
	"github.com/mrlokans/madr/internal/demo"
	http_controllers "github.com/mrlokans/madr/internal/http"
	"github.com/mrlokans/madr/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -9 cannot be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// ensureSecret fills in a random token secret when none is configured.
// Tokens signed with it do not survive a restart.
func ensureSecret(cfg *config.Auth) error {
	if cfg.SecretKey != "" {
		return nil
	}

	secret, err := auth.GenerateSecret()
	if err != nil {
		return fmt.Errorf("failed to generate token secret: %w", err)
	}
	cfg.SecretKey = secret
	log.Printf("WARNING: SECRET_KEY is not set, generated a random one. Issued tokens will not survive a restart.")

	return nil
}

// Build wires the database, services and router. The returned cleanup
// releases everything Build opened.
func Build(cfg *config.Config, version string) (*gin.Engine, func(), error) {
	if err := ensureSecret(&cfg.Auth); err != nil {
		return nil, nil, err
	}

	issuer, err := auth.NewTokenIssuer(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.TokenExpiry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize token issuer: %w", err)
	}

	db, err := database.NewDatabase(cfg.Database.Path, cfg.Database.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	accounts := auth.NewService(db.DB, cfg.Auth, issuer)
	loginLimiter := auth.NewLoginLimiter(cfg.Auth)

	var throttle *http_controllers.ClientThrottle
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	if cfg.RateLimit.Enabled {
		log.Printf("Request throttling enabled: %.1f rps, burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		throttle = http_controllers.NewClientThrottle(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		throttle.StartJanitor(janitorCtx, 5*time.Minute)
	}

	var demoMiddleware *demo.Middleware
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
		demoMiddleware = demo.NewMiddleware(true)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Accounts:       accounts,
		Authors:        services.NewAuthorService(db.DB, cfg.Pagination),
		Books:          services.NewBookService(db.DB, cfg.Pagination),
		AuthMiddleware: auth.NewMiddleware(accounts).RequireAuth(),
		LoginLimiter:   loginLimiter,
		Throttle:       throttle,
		DemoMiddleware: demoMiddleware,
		Database:       db,
		Version:        version,
	})

	cleanup := func() {
		stopJanitor()
		loginLimiter.Stop()
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	return router, cleanup, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting MADR v%s", version)

	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	router, cleanup, err := Build(cfg, version)
	if err != nil {
		log.Fatalf("%v", err)
	}

	Serve(router, cfg, func(ctx context.Context) {
		cleanup()
	})
}
