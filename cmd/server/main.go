package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/comex/backend/internal/application/billing"
	clearanceapp "github.com/comex/backend/internal/application/clearance"
	documentapp "github.com/comex/backend/internal/application/document"
	partnerapp "github.com/comex/backend/internal/application/partner"
	reportapp "github.com/comex/backend/internal/application/report"
	"github.com/comex/backend/internal/infrastructure/auth"
	"github.com/comex/backend/internal/infrastructure/cache"
	"github.com/comex/backend/internal/infrastructure/config"
	"github.com/comex/backend/internal/infrastructure/logger"
	"github.com/comex/backend/internal/infrastructure/persistence"
	"github.com/comex/backend/internal/infrastructure/rendering"
	"github.com/comex/backend/internal/infrastructure/storage"
	"github.com/comex/backend/internal/interfaces/http/handler"
	"github.com/comex/backend/internal/interfaces/http/middleware"
	"github.com/comex/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/comex/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Comex Backend API
//	@version		1.0
//	@description	Back office API for a customs clearance brokerage - clients, operations, invoicing and profitability reports

//	@contact.name	API Support

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Comex Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a zap-backed GORM logger
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	feeRepo := persistence.NewGormFeeRepository(db.DB)
	operationRepo := persistence.NewGormOperationRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	receiptRepo := persistence.NewGormReceiptRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	// Summary cache: Redis with in-memory fallback
	cacheFactory := cache.NewSummaryCacheFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(true),
	)
	summaryCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to initialize summary cache", zap.Error(err))
	}

	// Application services
	clientService := partnerapp.NewClientService(clientRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	feeService := billingapp.NewFeeService(feeRepo)
	operationService := clearanceapp.NewOperationService(operationRepo, invoiceRepo, log)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, operationService)
	receiptService := billingapp.NewReceiptService(receiptRepo, invoiceRepo)
	reportService := reportapp.NewService(reportRepo, summaryCache, cfg.Report.SummaryCacheTTL, log)
	operationService.WithSummaryInvalidator(reportService)

	// Document pipeline: HTML composition, Chrome rendering, S3 upload
	composer, err := rendering.NewDocumentComposer()
	if err != nil {
		log.Fatal("Failed to parse document templates", zap.Error(err))
	}

	renderer, err := rendering.NewChromedpRenderer(&rendering.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		RemoteURL:      cfg.Printing.RemoteChromeURL,
		NoSandbox:      cfg.Printing.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer renderer.Close()

	var objectStorage documentapp.ObjectStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		ensureCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(ensureCtx); err != nil {
			cancel()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		objectStorage = s3Storage
	} else {
		log.Warn("Object storage not configured, generated documents are kept in memory only")
		objectStorage = storage.NewStubObjectStorage()
	}

	documentService := documentapp.NewService(
		invoiceRepo,
		receiptRepo,
		operationRepo,
		clientRepo,
		composer,
		renderer,
		objectStorage,
		log,
	)

	// JWT service for API authentication
	jwtService := auth.NewJWTService(cfg.JWT)

	// Handlers
	clientHandler := handler.NewClientHandler(clientService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	feeHandler := handler.NewFeeHandler(feeService)
	operationHandler := handler.NewOperationHandler(operationService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, documentService)
	receiptHandler := handler.NewReceiptHandler(receiptService, documentService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler(db)

	// Gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Custom binding validators (cnpj, currency)
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register custom validators", zap.Error(err))
	}

	// Middleware order: request ID, recovery, logging, security
	// headers, CORS, body limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/system/ping",
			"/api/v1/system/info",
			"/api/v1/system/health",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Partner domain (clients, suppliers)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/clients", clientHandler.Create)
	partnerRoutes.GET("/clients", clientHandler.List)
	partnerRoutes.GET("/clients/:id", clientHandler.GetByID)
	partnerRoutes.GET("/clients/:id/operations", operationHandler.GetByClient)
	partnerRoutes.GET("/clients/:id/invoices", invoiceHandler.GetByClient)
	partnerRoutes.PUT("/clients/:id", clientHandler.Update)
	partnerRoutes.DELETE("/clients/:id", clientHandler.Delete)

	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetByID)
	partnerRoutes.PUT("/suppliers/:id", supplierHandler.Update)
	partnerRoutes.DELETE("/suppliers/:id", supplierHandler.Deactivate)

	// Clearance domain (operations)
	clearanceRoutes := router.NewDomainGroup("clearance", "/clearance")
	clearanceRoutes.POST("/operations", operationHandler.Create)
	clearanceRoutes.GET("/operations", operationHandler.List)
	clearanceRoutes.GET("/operations/:id", operationHandler.GetByID)
	clearanceRoutes.GET("/operations/:id/invoices", invoiceHandler.GetByOperation)
	clearanceRoutes.PUT("/operations/:id", operationHandler.Update)
	clearanceRoutes.POST("/operations/:id/recalculate", operationHandler.Recalculate)
	clearanceRoutes.DELETE("/operations/:id", operationHandler.Delete)

	// Billing domain (fees, invoices, receipts)
	billingRoutes := router.NewDomainGroup("billing", "/billing")
	billingRoutes.POST("/fees", feeHandler.Create)
	billingRoutes.GET("/fees", feeHandler.List)
	billingRoutes.GET("/fees/:id", feeHandler.GetByID)
	billingRoutes.PUT("/fees/:id", feeHandler.Update)
	billingRoutes.DELETE("/fees/:id", feeHandler.Deactivate)

	billingRoutes.POST("/invoices", invoiceHandler.Create)
	billingRoutes.GET("/invoices", invoiceHandler.List)
	billingRoutes.GET("/invoices/:id", invoiceHandler.GetByID)
	billingRoutes.GET("/invoices/:id/receipts", receiptHandler.GetByInvoice)
	billingRoutes.PUT("/invoices/:id", invoiceHandler.Update)
	billingRoutes.POST("/invoices/:id/pay", invoiceHandler.MarkAsPaid)
	billingRoutes.POST("/invoices/:id/pdf", invoiceHandler.GeneratePDF)
	billingRoutes.DELETE("/invoices/:id", invoiceHandler.Delete)

	billingRoutes.POST("/receipts", receiptHandler.Create)
	billingRoutes.GET("/receipts", receiptHandler.List)
	billingRoutes.GET("/receipts/:id", receiptHandler.GetByID)
	billingRoutes.PUT("/receipts/:id", receiptHandler.Update)
	billingRoutes.POST("/receipts/:id/pdf", receiptHandler.GeneratePDF)
	billingRoutes.DELETE("/receipts/:id", receiptHandler.Delete)

	// Reports domain
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.GET("/summary", reportHandler.GetSummary)
	reportRoutes.GET("/profit/by-operation", reportHandler.GetProfitByOperation)
	reportRoutes.GET("/profit/by-period", reportHandler.GetProfitByPeriod)
	reportRoutes.GET("/profit/by-client", reportHandler.GetProfitByClient)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/health", systemHandler.Health)

	r.Register(partnerRoutes).
		Register(clearanceRoutes).
		Register(billingRoutes).
		Register(reportRoutes).
		Register(systemRoutes)

	r.Setup()

	// HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for the root health check endpoint
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
