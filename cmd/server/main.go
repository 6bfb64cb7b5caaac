package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/kestrel/internal"
	"github.com/dukerupert/kestrel/internal/auth"
	"github.com/dukerupert/kestrel/internal/billing"
	"github.com/dukerupert/kestrel/internal/bootstrap"
	"github.com/dukerupert/kestrel/internal/cache"
	"github.com/dukerupert/kestrel/internal/entitlement"
	"github.com/dukerupert/kestrel/internal/events"
	"github.com/dukerupert/kestrel/internal/handler"
	"github.com/dukerupert/kestrel/internal/handler/api"
	"github.com/dukerupert/kestrel/internal/handler/webhook"
	"github.com/dukerupert/kestrel/internal/middleware"
	"github.com/dukerupert/kestrel/internal/postgres"
	"github.com/dukerupert/kestrel/internal/pricing"
	"github.com/dukerupert/kestrel/internal/repository"
	"github.com/dukerupert/kestrel/internal/router"
	"github.com/dukerupert/kestrel/internal/routes"
	"github.com/dukerupert/kestrel/internal/service"
	"github.com/dukerupert/kestrel/internal/telemetry"
)

const (
	serviceName = "kestrel"

	organizationCacheTTL = 5 * time.Minute

	// Credential endpoints allow this many attempts per client per window
	// when the limiter is shared through Redis.
	credentialLimit       = 10
	credentialLimitWindow = time.Minute

	shutdownTimeout = 10 * time.Second
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)
	slog.SetDefault(logger)

	// Initialize Sentry error tracking
	sentryCleanup, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer sentryCleanup()

	telemetry.InitBusinessMetrics(serviceName)
	metrics := middleware.NewMetrics(serviceName, nil)

	// Run migrations over database/sql, then serve from a pgx pool
	sqlDB, err := postgres.OpenSQL(cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	version, err := internal.RunMigrations(ctx, sqlDB)
	_ = sqlDB.Close()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed", "version", version)

	pool, err := postgres.Connect(ctx, cfg.DatabaseUrl, postgres.Options{ConnectTimeout: cfg.DBTimeout}, logger)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	store := repository.NewStore(pool)

	// Redis backs the organization cache and the shared rate limiter.
	// Without it both fall back to per-process behavior.
	var orgCache entitlement.OrganizationCache
	var credentialLimiter middleware.Limiter
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		defer redisClient.Close()

		orgCache = cache.NewOrganizationCache(redisClient, organizationCacheTTL)
		credentialLimiter = cache.NewRateLimiter(redisClient, credentialLimit, credentialLimitWindow)
		logger.Info("Redis cache enabled")
	} else {
		memLimiter := middleware.NewRateLimiter(middleware.CredentialRateLimiterConfig())
		defer memLimiter.Stop()
		credentialLimiter = memLimiter
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.Connect(cfg.NATSURL, logger)
		if err != nil {
			return fmt.Errorf("nats connection failed: %w", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	provider, err := newBillingProvider(cfg, logger)
	if err != nil {
		return err
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, serviceName, auth.DefaultTokenTTL)
	if err != nil {
		return fmt.Errorf("token issuer initialization failed: %w", err)
	}

	// Seed reference data and the administrator
	var admin *bootstrap.AdminConfig
	if cfg.Admin.Email != "" {
		admin = &bootstrap.AdminConfig{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
			Name:     cfg.Admin.Name,
		}
	}
	if err := bootstrap.Run(ctx, store, bootstrap.Config{Admin: admin}, logger); err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	// Initialize services
	engine := pricing.NewEngine(cfg.PriceRoundPlaces)
	resolver := entitlement.NewResolver(store, orgCache, logger)
	checkoutCfg := service.CheckoutConfig{Currency: cfg.Currency}

	memberService := service.NewMemberService(store, auth.DefaultCost, logger)
	catalogService := service.NewCatalogService(store, resolver, engine)
	cartService := service.NewCartService(store, resolver, engine, logger)
	orderService := service.NewOrderService(store, resolver, provider, publisher, checkoutCfg, logger)
	paymentService := service.NewPaymentService(store, resolver, provider, publisher, checkoutCfg, logger)
	lifecycleService := service.NewOrderLifecycleService(store, publisher, logger)
	adminService := service.NewAdminService(store, resolver, logger)

	// Initialize handlers
	orderHandler := api.NewOrderHandler(orderService, lifecycleService)

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		middleware.WithClientIP(),
		telemetry.SentryMiddleware(),
		metrics.Middleware,
		middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig()),
		middleware.MaxBodySize(),
		middleware.Timeout(cfg.RequestTimeout),
		middleware.Authenticate(tokens),
		middleware.WithRequestLogger(logger),
		telemetry.SentryContextMiddleware(),
		router.Logger(logger),
	)
	r.NotFound(handler.NotFoundResponse)

	routes.RegisterAPIRoutes(r, routes.APIDeps{
		Members:         api.NewMemberHandler(memberService, tokens),
		Products:        api.NewProductHandler(catalogService),
		Cart:            api.NewCartHandler(cartService),
		Orders:          orderHandler,
		Payments:        api.NewPaymentHandler(paymentService, cfg.Stripe.PublishableKey),
		CredentialLimit: middleware.RateLimit(credentialLimiter, credentialLimitWindow),
	})
	routes.RegisterAdminRoutes(r, routes.AdminDeps{
		Admin:  api.NewAdminHandler(adminService),
		Orders: orderHandler,
	})
	if provider != nil {
		routes.RegisterWebhookRoutes(r, routes.WebhookDeps{
			StripeHandler: webhook.NewStripeHandler(provider, lifecycleService, logger).HandleWebhook,
		})
	}
	routes.RegisterOpsRoutes(r, routes.OpsDeps{
		Health:  healthHandler(store, cfg.DBTimeout),
		Metrics: metrics,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router.CORS(cfg.AllowedOrigins)(r),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", srv.Addr, "base_url", cfg.BaseURL, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// newBillingProvider returns the Stripe provider when configured. Outside
// production an unconfigured gateway is replaced by the mock provider; in
// production it is nil and online payments are refused.
func newBillingProvider(cfg *internal.Config, logger *slog.Logger) (billing.Provider, error) {
	if cfg.Stripe.Enabled() {
		stripeCfg := billing.StripeConfig{
			APIKey:        cfg.Stripe.SecretKey,
			WebhookSecret: cfg.Stripe.WebhookSecret,
			Currency:      cfg.Currency,
			Timeout:       time.Duration(cfg.Stripe.TimeoutSeconds) * time.Second,
		}
		stripeProvider, err := billing.NewStripeProvider(stripeCfg)
		if err != nil {
			return nil, fmt.Errorf("stripe initialization failed: %w", err)
		}
		if stripeCfg.IsTestMode() {
			logger.Info("Stripe enabled in test mode")
		}
		return stripeProvider, nil
	}

	if cfg.IsProduction() {
		logger.Warn("Stripe not configured, online payments disabled")
		return nil, nil
	}

	logger.Warn("Stripe not configured, using mock payment provider")
	return billing.NewMockProvider(), nil
}

// pinger is satisfied by repository.PoolStore.
type pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(db pinger, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			middleware.GetLogger(r.Context()).Error("health check failed", "error", err)
			handler.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "unavailable",
				"database": "unreachable",
			})
			return
		}
		handler.WriteJSON(w, http.StatusOK, map[string]string{
			"status":   "ok",
			"database": "ok",
		})
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
