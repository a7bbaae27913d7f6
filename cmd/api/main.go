package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/config"
	"github.com/kipsang/dukapos-api/internal/infrastructure/database"
	"github.com/kipsang/dukapos-api/internal/infrastructure/repository"
	"github.com/kipsang/dukapos-api/internal/presentation/http/handler"
	"github.com/kipsang/dukapos-api/internal/presentation/http/routes"
	"github.com/kipsang/dukapos-api/pkg/oauth"
	"github.com/kipsang/dukapos-api/pkg/printer"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	terminalRepo := repository.NewTerminalRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	txRunner := repository.NewTxRunner(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo, supplierRepo, txRunner)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	customerService := service.NewCustomerService(customerRepo)
	terminalService := service.NewTerminalService(terminalRepo)
	saleService := service.NewSaleService(saleRepo, txRunner)
	paymentService := service.NewPaymentService(paymentRepo, txRunner)
	stockService := service.NewStockService(productRepo, movementRepo, txRunner)
	reportService := service.NewReportService(analyticsRepo, productRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.Device,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, saleRepo, settingsRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Product:  handler.NewProductHandler(productService),
		Category: handler.NewCategoryHandler(categoryService),
		Supplier: handler.NewSupplierHandler(supplierService),
		Customer: handler.NewCustomerHandler(customerService),
		Terminal: handler.NewTerminalHandler(terminalService),
		Sale:     handler.NewSaleHandler(saleService),
		Payment:  handler.NewPaymentHandler(paymentService),
		Stock:    handler.NewStockHandler(stockService),
		Report:   handler.NewReportHandler(reportService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
