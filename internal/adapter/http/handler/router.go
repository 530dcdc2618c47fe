package handler

import (
	"delegated-treasury/internal/adapter/http/middleware"
	"delegated-treasury/internal/adapter/metrics"
	"delegated-treasury/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	VaultSvc       ports.VaultService
	AuditLogSvc    ports.AuditLogService
	RegistrySvc    ports.RegistryService
	FactorySvc     ports.FactoryService
	AssetSvc       ports.AssetService
	SigSvc         ports.SignatureService
	TokenSvc       ports.TokenService
	NonceStore     ports.NonceStore
	Auth           middleware.AuthConfig
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	Metrics        *metrics.Metrics     // nil = metrics disabled
	MetricsPath    string
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// GET routes are public; everything that mutates state requires authentication.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

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

	authn := middleware.Authenticate(deps.SigSvc, deps.TokenSvc, deps.NonceStore, deps.Auth, deps.Logger)

	v1 := r.Group("/api/v1")

	// --- Session tokens (signed requests only) ---
	authHandler := NewAuthHandler(deps.TokenSvc)
	v1.POST("/auth/token",
		rl("auth_token"),
		middleware.SignatureAuth(deps.SigSvc, deps.NonceStore, deps.Auth, deps.Logger),
		authHandler.IssueToken,
	)

	// --- Vaults ---
	vaultHandler := NewVaultHandler(deps.VaultSvc)
	v1.POST("/vaults", authn, rl("admin"), vaultHandler.Initialize)
	vaults := v1.Group("/vaults/:id")
	{
		vaults.GET("", rl("reads"), vaultHandler.Get)
		vaults.GET("/balance", rl("reads"), vaultHandler.Balance)
		vaults.GET("/executor", rl("reads"), vaultHandler.Executor)
		vaults.POST("/deposit", authn, rl("vault_write"), vaultHandler.Deposit)
		vaults.POST("/withdraw", authn, rl("vault_write"), vaultHandler.Withdraw)
		vaults.PUT("/executor", authn, rl("admin"), vaultHandler.SetExecutor)
		vaults.DELETE("/executor", authn, rl("admin"), vaultHandler.ClearExecutor)
		vaults.PUT("/history-target", authn, rl("admin"), vaultHandler.SetHistoryTarget)
		vaults.POST("/spend", authn, rl("vault_spend"), vaultHandler.Spend)
		vaults.PUT("/owner", authn, rl("admin"), vaultHandler.TransferOwnership)
		vaults.PUT("/paused", authn, rl("admin"), vaultHandler.SetPaused)
	}

	// --- Audit logs ---
	historyHandler := NewHistoryHandler(deps.AuditLogSvc)
	v1.POST("/history", authn, rl("admin"), historyHandler.Initialize)
	history := v1.Group("/history/:log")
	{
		history.GET("", rl("reads"), historyHandler.Info)
		history.PUT("/writer", authn, rl("admin"), historyHandler.SetWriter)
		history.PUT("/admin", authn, rl("admin"), historyHandler.TransferAdmin)
		history.POST("/subjects/:subject/records", authn, rl("history_write"), historyHandler.Append)
		history.GET("/subjects/:subject/records", rl("reads"), historyHandler.List)
		history.GET("/subjects/:subject/records/:seq", rl("reads"), historyHandler.Get)
		history.GET("/subjects/:subject/count", rl("reads"), historyHandler.Count)
	}

	// --- Algorithm registry ---
	registryHandler := NewRegistryHandler(deps.RegistrySvc)
	registry := v1.Group("/registry")
	{
		registry.POST("", authn, rl("admin"), registryHandler.Initialize)
		registry.GET("", rl("reads"), registryHandler.Info)
		registry.PUT("/admin", authn, rl("admin"), registryHandler.TransferAdmin)
		registry.POST("/algos", authn, rl("admin"), registryHandler.CreateAlgorithm)
		registry.GET("/algos/:id", rl("reads"), registryHandler.GetAlgorithm)
		registry.PUT("/algos/:id/active", authn, rl("admin"), registryHandler.SetActive)
		registry.PUT("/algos/:id/metadata", authn, rl("admin"), registryHandler.UpdateMetadata)
	}

	// --- Vault factory ---
	factoryHandler := NewFactoryHandler(deps.FactorySvc)
	factory := v1.Group("/factory")
	{
		factory.POST("", authn, rl("admin"), factoryHandler.Initialize)
		factory.GET("", rl("reads"), factoryHandler.Info)
		factory.PUT("/admin", authn, rl("admin"), factoryHandler.UpdateAdmin)
		factory.PUT("/asset", authn, rl("admin"), factoryHandler.UpdateAsset)
		factory.POST("/vaults", authn, rl("admin"), factoryHandler.CreateCreatorVault)
		factory.GET("/vaults/:creator", rl("reads"), factoryHandler.GetCreatorVault)
		factory.GET("/creators", rl("reads"), factoryHandler.ListCreators)
	}

	// --- Assets ---
	assetHandler := NewAssetHandler(deps.AssetSvc)
	assets := v1.Group("/assets/:asset")
	{
		assets.POST("/mint", authn, rl("asset_mint"), assetHandler.Mint)
		assets.GET("/balances/:holder", rl("reads"), assetHandler.BalanceOf)
	}

	return r
}
