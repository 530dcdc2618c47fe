package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delegated-treasury/config"
	httpHandler "delegated-treasury/internal/adapter/http/handler"
	"delegated-treasury/internal/adapter/http/middleware"
	"delegated-treasury/internal/adapter/metrics"
	memStorage "delegated-treasury/internal/adapter/storage/memory"
	pgStorage "delegated-treasury/internal/adapter/storage/postgres"
	redisStorage "delegated-treasury/internal/adapter/storage/redis"
	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/internal/service"
	"delegated-treasury/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("ledger", cfg.Ledger.Driver).
		Msg("Starting Delegated Treasury")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret must be set")
	}

	var platformAdmin domain.Identity
	if cfg.Auth.Admin != "" {
		platformAdmin, err = domain.ParseIdentity(cfg.Auth.Admin)
		if err != nil {
			log.Fatal().Err(err).Msg("auth.admin is not a valid identity")
		}
	} else {
		log.Warn().Msg("auth.admin not set, asset minting is disabled")
	}

	ctx := context.Background()
	var healthCheckers []ports.HealthChecker

	// Initialize Redis client when any component needs it
	var rdb *goredis.Client
	if cfg.UsesRedis() {
		rdb, err = redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize ledger store
	var store ports.LedgerStore
	switch cfg.Ledger.Driver {
	case config.LedgerPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		pgLedger := pgStorage.NewLedgerStore(pool)
		if err := pgLedger.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare ledger schema")
		}
		store = pgLedger
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	case config.LedgerRedis:
		store = redisStorage.NewLedgerStore(rdb, cfg.Ledger.LockTTL)
	default:
		log.Warn().Msg("Using in-memory ledger, state is lost on restart")
		store = memStorage.NewLedgerStore()
	}

	// Nonce and rate limit stores
	var nonceStore ports.NonceStore = memStorage.NewNonceStore()
	if cfg.Auth.NonceStore == "redis" {
		nonceStore = redisStorage.NewNonceStore(rdb)
	}

	var rateLimitStore ports.RateLimitStore
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Backend == "redis" {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		} else {
			rateLimitStore = memStorage.NewRateLimitStore(10 * time.Minute)
		}
	}

	// Metrics
	var m *metrics.Metrics
	var vaultMetrics ports.VaultMetrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		vaultMetrics = m
	}

	// Event delivery
	notifier := service.NewWebhookNotifier(
		cfg.Webhook.URL,
		cfg.Webhook.Secret,
		cfg.Webhook.MaxRetries,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		logger.Component(log, "webhook"),
	)

	// Initialize core services
	auth := service.NewContextAuthorizer()
	assetLedger := service.NewAssetLedger()
	sigSvc := service.NewEd25519SignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	auditSvc := service.NewAuditLogService(store, auth, service.SystemClock{}, logger.Component(log, "audit"))
	vaultSvc := service.NewVaultService(store, assetLedger, auth, auditSvc, notifier, vaultMetrics, logger.Component(log, "vault"))
	registrySvc := service.NewRegistryService(store, auth, logger.Component(log, "registry"))
	factorySvc := service.NewFactoryService(store, vaultSvc, auth, logger.Component(log, "factory"))
	assetSvc := service.NewAssetService(store, assetLedger, auth, platformAdmin, logger.Component(log, "asset"))

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		VaultSvc:    vaultSvc,
		AuditLogSvc: auditSvc,
		RegistrySvc: registrySvc,
		FactorySvc:  factorySvc,
		AssetSvc:    assetSvc,
		SigSvc:      sigSvc,
		TokenSvc:    tokenSvc,
		NonceStore:  nonceStore,
		Auth: middleware.AuthConfig{
			MaxClockDrift: cfg.Auth.MaxClockDrift,
			NonceTTL:      cfg.Auth.NonceTTL,
		},
		RateLimitStore: rateLimitStore,
		Metrics:        m,
		MetricsPath:    cfg.Metrics.Path,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	serve(router, cfg, notifier, log)
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains requests and
// pending webhook deliveries.
func serve(handler http.Handler, cfg *config.Config, notifier *service.WebhookNotifier, log zerolog.Logger) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	done := make(chan struct{})
	go func() {
		notifier.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warn().Msg("Pending webhook deliveries abandoned")
	}

	log.Info().Msg("Server exited")
}
