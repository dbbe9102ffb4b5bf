package router

import (
	"time"

	"qistpos/internal/config"
	"qistpos/internal/handler"
	"qistpos/internal/middleware"
	"qistpos/internal/repository"
	"qistpos/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	installmentRepo := repository.NewInstallmentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	ledgerSvc := service.NewLedgerService(saleRepo, customerRepo, productRepo, installmentRepo)
	productSvc := service.NewProductService(productRepo, rdb, cfg.LowStockThreshold)
	reportSvc := service.NewReportService(saleRepo, installmentRepo, customerRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	receiptSvc := service.NewReceiptService(saleRepo, settingsRepo, cfg.ReceiptStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	salesH := handler.NewSalesHandler(ledgerSvc, reportSvc)
	installmentsH := handler.NewInstallmentsHandler(ledgerSvc, reportSvc)
	productsH := handler.NewProductsHandler(productSvc)
	customersH := handler.NewCustomersHandler(reportSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	receiptsH := handler.NewReceiptsHandler(receiptSvc)
	priceH := handler.NewPriceHandler(productRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.POST("/sales/cash", salesH.RecordCashSale)
		v1.POST("/sales/installment", salesH.RecordInstallmentSale)
		v1.POST("/sales/installment/preview", salesH.PreviewPlan)
		v1.GET("/sales/summary", salesH.SalesSummary)
		v1.GET("/sales/:id/receipt", receiptsH.Get)

		v1.GET("/installments", installmentsH.List)
		v1.PATCH("/installments/:sale_id/:number/pay", installmentsH.MarkPaid)

		v1.POST("/products", productsH.Create)
		v1.GET("/products", productsH.List)
		v1.GET("/products/low-stock", productsH.LowStock)
		v1.GET("/products/:id", productsH.Get)
		v1.PUT("/products/:id", productsH.Update)

		v1.GET("/customers", customersH.List)

		v1.GET("/settings", settingsH.Get)
		v1.PUT("/settings", settingsH.Update)

		v1.GET("/price/:id", priceH.GetPrice)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
