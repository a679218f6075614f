// Package v1 provides HTTP API version 1.
package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"cartera/internal/core/id"
	"cartera/internal/domain/auth"
	"cartera/internal/domain/cartera"
	"cartera/internal/domain/catalogs/client"
	"cartera/internal/domain/catalogs/provider"
	"cartera/internal/domain/ledger"
	"cartera/internal/domain/registers/movements"
	"cartera/internal/domain/reports"
	"cartera/internal/infrastructure/http/v1/handlers"
	"cartera/internal/infrastructure/http/v1/middleware"
	"cartera/internal/infrastructure/storage/postgres"
	"cartera/internal/infrastructure/storage/postgres/catalog_repo"
	"cartera/internal/infrastructure/storage/postgres/register_repo"
	"cartera/internal/infrastructure/storage/postgres/report_repo"
	"cartera/pkg/logger"
	"cartera/pkg/numerator"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager runs repository calls and transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Numerator generates catalog codes
	Numerator *numerator.Service

	// AdjustmentPolicy governs the sign of adjustment movements
	AdjustmentPolicy ledger.AdjustmentPolicy

	// Audit records catalog changes; optional
	Audit *postgres.AuditService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, cfg)

		// Protected endpoints: JWT carries the company scope
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerStatementRoutes(protected, cfg)
		registerRegisterRoutes(protected, cfg)
		registerReportRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public auth endpoints (no JWT required)
	publicAuth := rg.Group("/auth")

	// Protected auth endpoints (JWT required)
	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- CLIENTS ---
	{
		repo := catalog_repo.NewClientRepo(cfg.TxManager)
		service := client.NewService(repo, cfg.TxManager, cfg.Numerator)

		if cfg.Audit != nil {
			service.Hooks().OnAfterCreate(auditHook(cfg.Audit, "client", postgres.AuditActionCreate,
				func(c *client.Client) (id.ID, map[string]any) { return c.ID, postgres.StructToMap(c) }))
			service.Hooks().OnAfterUpdate(auditHook(cfg.Audit, "client", postgres.AuditActionUpdate,
				func(c *client.Client) (id.ID, map[string]any) { return c.ID, postgres.StructToMap(c) }))
			service.Hooks().OnAfterDelete(auditHook(cfg.Audit, "client", postgres.AuditActionDelete,
				func(c *client.Client) (id.ID, map[string]any) { return c.ID, nil }))
		}

		handler := handlers.NewClientHandler(baseHandler, service)

		group := catalogs.Group("/clients")
		RegisterCatalogRoutes(group, handler)
		group.GET("/by-tax-id/:taxId", handler.FindByTaxID)
	}

	// --- PROVIDERS ---
	{
		repo := catalog_repo.NewProviderRepo(cfg.TxManager)
		service := provider.NewService(repo, cfg.TxManager, cfg.Numerator)

		if cfg.Audit != nil {
			service.Hooks().OnAfterCreate(auditHook(cfg.Audit, "provider", postgres.AuditActionCreate,
				func(p *provider.Provider) (id.ID, map[string]any) { return p.ID, postgres.StructToMap(p) }))
			service.Hooks().OnAfterUpdate(auditHook(cfg.Audit, "provider", postgres.AuditActionUpdate,
				func(p *provider.Provider) (id.ID, map[string]any) { return p.ID, postgres.StructToMap(p) }))
			service.Hooks().OnAfterDelete(auditHook(cfg.Audit, "provider", postgres.AuditActionDelete,
				func(p *provider.Provider) (id.ID, map[string]any) { return p.ID, nil }))
		}

		handler := handlers.NewProviderHandler(baseHandler, service)

		group := catalogs.Group("/providers")
		RegisterCatalogRoutes(group, handler)
		group.GET("/by-tax-id/:taxId", handler.FindByTaxID)
	}
}

// auditHook adapts the audit service to a catalog lifecycle hook.
func auditHook[T any](audit *postgres.AuditService, entityType string, action postgres.AuditAction, extract func(T) (id.ID, map[string]any)) func(context.Context, T) error {
	return func(ctx context.Context, entity T) error {
		entityID, changes := extract(entity)
		return audit.LogChange(ctx, entityType, entityID, action, changes)
	}
}

// registerStatementRoutes registers account statement endpoints.
func registerStatementRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	movementsRepo := register_repo.NewMovementsRepo(cfg.TxManager)
	clientRepo := catalog_repo.NewClientRepo(cfg.TxManager)
	providerRepo := catalog_repo.NewProviderRepo(cfg.TxManager)

	service := cartera.NewService(movementsRepo, clientRepo, providerRepo, cfg.AdjustmentPolicy)
	handler := handlers.NewStatementHandler(baseHandler, service)

	handler.RegisterRoutes(rg.Group("/statements"))
}

// registerRegisterRoutes registers movement register endpoints.
func registerRegisterRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	repo := register_repo.NewMovementsRepo(cfg.TxManager)
	service := movements.NewService(repo, cfg.TxManager)
	handler := handlers.NewMovementsHandler(baseHandler, service)

	handler.RegisterRoutes(rg.Group("/registers/movements"))
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	repo := report_repo.NewReportRepo(cfg.TxManager, cfg.AdjustmentPolicy)
	service := reports.NewService(repo)
	handler := handlers.NewReportsHandler(baseHandler, service)

	handler.RegisterRoutes(rg.Group("/reports"))
}
