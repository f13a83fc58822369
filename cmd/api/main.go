package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spendguard/config"
	httpHandler "spendguard/internal/adapter/http/handler"
	pgStorage "spendguard/internal/adapter/storage/postgres"
	redisStorage "spendguard/internal/adapter/storage/redis"
	"spendguard/internal/core/ports"
	"spendguard/internal/service"
	"spendguard/pkg/logger"
	"spendguard/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting SpendGuard")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	limitRepo := pgStorage.NewLimitRepo(pool)
	stateRepo := pgStorage.NewStateRepo(pool)
	delegationRepo := pgStorage.NewDelegationRepo(pool)
	transactor := pgStorage.NewTransactor(pool)
	clock := pgStorage.NewLedgerClock(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	fraudCounters := redisStorage.NewFraudCounterStore(rdb)
	events := redisStorage.NewEventPublisher(rdb, cfg.Events.Stream, cfg.Events.MaxLen, log)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize metrics
	m := metrics.New()

	// Initialize business services
	adminSvc := service.NewAdminService(stateRepo, hashSvc, tokenSvc, log)
	batchSvc := service.NewBatchService(limitRepo, stateRepo, clock, events, transactor, m, log)
	enforcementSvc := service.NewEnforcementService(limitRepo, clock, events, transactor, m, log)
	delegationSvc := service.NewDelegationService(delegationRepo, events, transactor, log)
	fraudSvc := service.NewFraudService(fraudCounters, clock, events, cfg.Fraud.AbnormalAmount, cfg.Fraud.MaxDailyTotal, log)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AdminSvc:       adminSvc,
		BatchSvc:       batchSvc,
		EnforcementSvc: enforcementSvc,
		DelegationSvc:  delegationSvc,
		FraudSvc:       fraudSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		HMACSecret:     cfg.Security.HMACSecret,
		SignatureTTL:   cfg.Security.SignatureTTL,
		NonceTTL:       cfg.Security.NonceTTL,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
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

	log.Info().Msg("Server exited")
}
