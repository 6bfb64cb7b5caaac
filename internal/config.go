package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultJWTSecret is only acceptable outside production.
const defaultJWTSecret = "dev-secret-change-in-production-0000000"

type Config struct {
	Env         string
	LogLevel    string
	Port        uint16
	DatabaseUrl string
	JWTSecret   string
	BaseURL     string

	// AllowedOrigins lists browser origins permitted by CORS
	AllowedOrigins []string

	Currency         string
	PriceRoundPlaces int32

	RequestTimeout time.Duration
	DBTimeout      time.Duration

	// RedisURL enables the shared entitlement cache and rate limiter when set
	RedisURL string

	// NATSURL enables order event publishing when set
	NATSURL string

	Stripe StripeConfig
	Admin  AdminConfig
	Sentry SentryConfig
}

// SentryConfig holds configuration for Sentry error tracking
type SentryConfig struct {
	DSN              string
	Enabled          bool
	Environment      string
	Release          string
	SampleRate       float64
	TracesSampleRate float64
	Debug            bool
}

// AdminConfig contains the bootstrap administrator.
// These values are only used to create the admin member when it is missing.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
	TimeoutSeconds int
}

// Enabled reports whether a Stripe secret key is configured.
func (c StripeConfig) Enabled() bool {
	return c.SecretKey != ""
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:              getEnv("ENV", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Port:             getEnvInt("PORT", 3000),
		DatabaseUrl:      os.Getenv("DATABASE_URL"),
		JWTSecret:        getEnv("JWT_SECRET", defaultJWTSecret),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		AllowedOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		Currency:         strings.ToLower(getEnv("CURRENCY", "inr")),
		PriceRoundPlaces: int32(getEnvInt("PRICE_ROUND_PLACES", 0)),
		RequestTimeout:   time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		DBTimeout:        time.Duration(getEnvInt("DB_TIMEOUT_SECONDS", 5)) * time.Second,
		RedisURL:         getEnv("REDIS_URL", ""),
		NATSURL:          getEnv("NATS_URL", ""),
		Stripe: StripeConfig{
			SecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
			PublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
			WebhookSecret:  getEnv("STRIPE_WEBHOOK_SECRET", ""),
			TimeoutSeconds: int(getEnvInt("STRIPE_TIMEOUT_SECONDS", 30)),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Name:     getEnv("ADMIN_NAME", "Administrator"),
		},
		Sentry: SentryConfig{
			DSN:              getEnv("SENTRY_DSN", ""),
			Enabled:          getEnvBool("SENTRY_ENABLED", false), // Disabled by default for development
			Environment:      getEnv("SENTRY_ENVIRONMENT", "development"),
			Release:          getEnv("SENTRY_RELEASE", ""),
			SampleRate:       getEnvFloat("SENTRY_SAMPLE_RATE", 1.0),
			TracesSampleRate: getEnvFloat("SENTRY_TRACES_SAMPLE_RATE", 0.0),
			Debug:            getEnvBool("SENTRY_DEBUG", false),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate normalizes soft settings and rejects unusable ones.
func (c *Config) validate() error {
	validEnv := c.Env == "dev" || c.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", c.Env))
		c.Env = "prod"
	}

	validLevel := c.LogLevel == "info" || c.LogLevel == "debug" || c.LogLevel == "warn" || c.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", c.LogLevel))
		c.LogLevel = "info"
	}

	if c.DatabaseUrl == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}

	if c.IsProduction() && c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production environment")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	if c.PriceRoundPlaces < 0 || c.PriceRoundPlaces > 4 {
		return fmt.Errorf("PRICE_ROUND_PLACES must be between 0 and 4, got %d", c.PriceRoundPlaces)
	}

	if c.IsProduction() && c.Stripe.Enabled() && c.Stripe.WebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET required when Stripe is enabled in production")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var floatValue float64
		if _, err := fmt.Sscanf(value, "%f", &floatValue); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
