package handler

import (
	"time"

	"spendguard/internal/adapter/http/middleware"
	redisStore "spendguard/internal/adapter/storage/redis"
	"spendguard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AdminSvc       ports.AdminService
	BatchSvc       ports.BatchService
	EnforcementSvc ports.EnforcementService
	DelegationSvc  ports.DelegationService
	FraudSvc       ports.FraudService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	HMACSecret     string
	SignatureTTL   time.Duration
	NonceTTL       time.Duration
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	adminHandler := NewAdminHandler(deps.AdminSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), adminHandler.Login)
	}
	v1.POST("/admin/initialize", rl("admin_init"), adminHandler.Initialize)

	// --- JWT-authenticated routes (administration) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	limitHandler := NewLimitHandler(deps.BatchSvc, deps.EnforcementSvc)

	admin := v1.Group("/admin", jwtAuth)
	{
		admin.GET("", rl("query"), adminHandler.GetAdmin)
		admin.PUT("", rl("query"), adminHandler.SetAdmin)
		admin.GET("/stats", rl("query"), adminHandler.GetStats)
	}

	limits := v1.Group("/limits", jwtAuth)
	{
		limits.POST("/batch", rl("batch"), limitHandler.BatchUpdate)
		limits.GET("/:user", rl("query"), limitHandler.GetLimit)
	}

	// --- HMAC-authenticated routes (enforcement surface) ---
	hmacAuth := middleware.HMACAuth(
		deps.HMACSecret, deps.SignatureTTL, deps.NonceTTL,
		deps.SigSvc, deps.NonceStore, deps.Logger,
	)
	delegationHandler := NewDelegationHandler(deps.DelegationSvc)
	fraudHandler := NewFraudHandler(deps.FraudSvc)

	v1.POST("/limits/enforce", hmacAuth, rl("enforce"), limitHandler.Enforce)

	delegations := v1.Group("/delegations", hmacAuth)
	{
		delegations.POST("", rl("delegations"), delegationHandler.Set)
		delegations.POST("/consume", rl("delegations"), delegationHandler.Consume)
		delegations.GET("/:owner/:delegate", rl("delegations"), delegationHandler.Get)
		delegations.DELETE("/:owner/:delegate", rl("delegations"), delegationHandler.Revoke)
	}

	fraud := v1.Group("/fraud", hmacAuth)
	{
		fraud.POST("/check", rl("fraud"), fraudHandler.Check)
	}

	return r
}
