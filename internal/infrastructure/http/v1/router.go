// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"almoxarifado/internal/domain/catalogs/entity"
	"almoxarifado/internal/domain/catalogs/lot"
	"almoxarifado/internal/domain/catalogs/operation"
	"almoxarifado/internal/domain/catalogs/product"
	"almoxarifado/internal/domain/catalogs/warehouse"
	"almoxarifado/internal/domain/reports"
	"almoxarifado/internal/infrastructure/http/v1/handlers"
	"almoxarifado/internal/infrastructure/http/v1/middleware"
	"almoxarifado/internal/infrastructure/storage/postgres"
	"almoxarifado/internal/infrastructure/storage/postgres/catalog_repo"
	"almoxarifado/internal/infrastructure/storage/postgres/report_repo"
	"almoxarifado/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks).
	Pool *postgres.Pool

	// TxManager routes repository queries.
	TxManager *postgres.TxManager

	// Logger for request logging.
	Logger *logger.Logger

	// JWTValidator for token validation. Auth is skipped when nil.
	JWTValidator middleware.JWTValidator
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Gzip())
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
	if cfg.JWTValidator != nil {
		v1.Use(middleware.Auth(cfg.JWTValidator))
	}

	registerCatalogRoutes(v1, cfg)
	registerReportRoutes(v1, cfg)

	return router
}

// registerCatalogRoutes registers the catalog lookup endpoints that feed
// report filter pickers.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	entityRepo := catalog_repo.NewEntityRepo(cfg.TxManager)
	entityService := entity.NewService(entityRepo)
	entityHandler := handlers.NewEntityHandler(baseHandler, entityService)

	warehouseService := warehouse.NewService(catalog_repo.NewWarehouseRepo(cfg.TxManager), entityRepo)
	warehouseHandler := handlers.NewWarehouseHandler(baseHandler, warehouseService)

	operationService := operation.NewService(catalog_repo.NewOperationRepo(cfg.TxManager), entityRepo)
	operationHandler := handlers.NewOperationHandler(baseHandler, operationService)

	lotService := lot.NewService(catalog_repo.NewLotRepo(cfg.TxManager), entityRepo)
	lotHandler := handlers.NewLotHandler(baseHandler, lotService)

	productService := product.NewService(catalog_repo.NewProductRepo(cfg.TxManager), entityRepo)
	productHandler := handlers.NewProductHandler(baseHandler, productService)

	entities := rg.Group("/entities")
	{
		entities.GET("", entityHandler.List)
		entities.GET("/:id", entityHandler.GetByID)
		entities.GET("/:id/warehouses", warehouseHandler.ListByEntity)
		entities.GET("/:id/operations", operationHandler.ListByEntity)
		entities.GET("/:id/lots", lotHandler.ListByEntity)
		entities.GET("/:id/moved-products", productHandler.ListMovedByEntity)
	}
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	reportRepo := report_repo.NewReconciliationRepo(cfg.TxManager)
	reportService := reports.NewServiceWithTx(reportRepo, cfg.TxManager)
	reportHandler := handlers.NewReportsHandler(baseHandler, reportService)

	reportsGroup := rg.Group("/reports")
	{
		reportsGroup.GET("/stock-reconciliation", reportHandler.GetStockReconciliation)
	}
}
