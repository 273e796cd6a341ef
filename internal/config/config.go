package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		RateLimit
		Pagination
		Demo
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string // "release", "debug" or "test"
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogLevel string // GORM logger level: "silent", "error", "warn", "info"
	}
	Auth struct {
		SecretKey   string        // HMAC secret for access tokens, generated at start-up if empty
		Algorithm   string        // HS256, HS384 or HS512
		TokenExpiry time.Duration // Derived from ACCESS_TOKEN_EXPIRE_MINUTES
		BcryptCost  int

		// Login lockout
		MaxLoginAttempts int           // Max failed attempts before lockout (default: 5)
		RateLimitWindow  time.Duration // Time window for counting attempts (default: 15m)
		LockoutDuration  time.Duration // How long to lock out (default: 30m)
	}
	RateLimit struct {
		Enabled bool
		RPS     float64 // Sustained requests per second per client IP
		Burst   int
	}
	Pagination struct {
		DefaultSize int
		MaxSize     int
	}
	Demo struct {
		Enabled bool // Read-only catalog, see cmd/generate_demo
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")

	// Auth defaults
	v.SetDefault("secret_key", "") // Auto-generated if empty
	v.SetDefault("algorithm", DefaultAlgorithm)
	v.SetDefault("access_token_expire_minutes", 30)
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_max_login_attempts", 5)
	v.SetDefault("auth_rate_limit_window", "15m")
	v.SetDefault("auth_lockout_duration", "30m")

	// API throttling defaults
	v.SetDefault("rate_limit_enabled", false)
	v.SetDefault("rate_limit_rps", 10)
	v.SetDefault("rate_limit_burst", 20)

	v.SetDefault("page_size_default", DefaultPageSize)
	v.SetDefault("page_size_max", MaxPageSize)

	v.SetDefault("demo_mode", false)

	// Optional config file, environment still wins
	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("WARNING: could not read config file %s: %v", file, err)
		}
	}

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Auth: Auth{
			SecretKey:        v.GetString("SECRET_KEY"),
			Algorithm:        v.GetString("ALGORITHM"),
			TokenExpiry:      time.Duration(v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute,
			BcryptCost:       v.GetInt("AUTH_BCRYPT_COST"),
			MaxLoginAttempts: v.GetInt("AUTH_MAX_LOGIN_ATTEMPTS"),
			RateLimitWindow:  v.GetDuration("AUTH_RATE_LIMIT_WINDOW"),
			LockoutDuration:  v.GetDuration("AUTH_LOCKOUT_DURATION"),
		},
		RateLimit: RateLimit{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
		Pagination: Pagination{
			DefaultSize: v.GetInt("PAGE_SIZE_DEFAULT"),
			MaxSize:     v.GetInt("PAGE_SIZE_MAX"),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
	}
}
