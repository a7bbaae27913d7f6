package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/config"
	"github.com/kipsang/dukapos-api/internal/domain/policy"
	domainRepo "github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/internal/presentation/http/handler"
	"github.com/kipsang/dukapos-api/internal/presentation/http/middleware"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Supplier *handler.SupplierHandler
	Customer *handler.CustomerHandler
	Terminal *handler.TerminalHandler
	Sale     *handler.SaleHandler
	Payment  *handler.PaymentHandler
	Stock    *handler.StockHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuthURL)
		auth.POST("/google/callback", h.Auth.GoogleLogin)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Registration is admin-only, so it lives behind authentication
	protected.POST("/auth/register",
		middleware.RequireAction(policy.ActionManageUsers), h.Auth.Register)

	// Settings
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("", middleware.RequireAction(policy.ActionManageSettings), h.Settings.UpdateSettings)
	}

	// Products
	registerProductRoutes(protected, h)

	// Categories and suppliers
	registerCatalogRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Terminals
	registerTerminalRoutes(protected, h)

	// Sales and payments
	registerSaleRoutes(protected, h, deps)

	// Stock ledger
	registerStockRoutes(protected, h)

	// Reports
	registerReportRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		// Any cashier can browse the catalog and scan barcodes
		products.GET("", h.Product.ListProducts)
		products.GET("/sku/:sku", h.Product.GetProductBySKU)
		products.GET("/low-stock", middleware.RequireAction(policy.ActionViewReports), h.Product.GetLowStockProducts)
		products.GET("/:id", h.Product.GetProduct)

		manage := middleware.RequireAction(policy.ActionManageCatalog)
		products.POST("", manage, h.Product.CreateProduct)
		products.PUT("/:id", manage, h.Product.UpdateProduct)
		products.DELETE("/:id", manage, h.Product.DeleteProduct)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	manage := middleware.RequireAction(policy.ActionManageCatalog)

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.ListCategories)
		categories.GET("/:id", h.Category.GetCategory)
		categories.POST("", manage, h.Category.CreateCategory)
		categories.PUT("/:id", manage, h.Category.UpdateCategory)
		categories.DELETE("/:id", manage, h.Category.DeleteCategory)
	}

	suppliers := protected.Group("/suppliers")
	suppliers.Use(manage)
	{
		suppliers.GET("", h.Supplier.ListSuppliers)
		suppliers.POST("", h.Supplier.CreateSupplier)
		suppliers.GET("/:id", h.Supplier.GetSupplier)
		suppliers.PUT("/:id", h.Supplier.UpdateSupplier)
		suppliers.DELETE("/:id", h.Supplier.DeleteSupplier)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequireAction(policy.ActionManageCustomers))
	{
		customers.GET("", h.Customer.ListCustomers)
		customers.POST("", h.Customer.CreateCustomer)
		customers.GET("/:id", h.Customer.GetCustomer)
		customers.PUT("/:id", h.Customer.UpdateCustomer)
		customers.DELETE("/:id", h.Customer.DeleteCustomer)
	}
}

func registerTerminalRoutes(protected *gin.RouterGroup, h *Handlers) {
	terminals := protected.Group("/terminals")
	{
		terminals.GET("", h.Terminal.ListTerminals)
		terminals.GET("/:id", h.Terminal.GetTerminal)

		manage := middleware.RequireAction(policy.ActionManageTerminals)
		terminals.POST("", manage, h.Terminal.CreateTerminal)
		terminals.PUT("/:id", manage, h.Terminal.UpdateTerminal)
		terminals.PUT("/:id/active", manage, h.Terminal.SetActive)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		view := middleware.RequireAction(policy.ActionViewSales)
		sales.GET("", view, h.Sale.ListSales)
		sales.GET("/order/:orderNumber", view, h.Sale.GetSaleByOrderNumber)
		sales.GET("/:id", view, h.Sale.GetSale)
		sales.GET("/:id/payments", view, h.Payment.ListSalePayments)

		// Checkout uses idempotency middleware to prevent duplicate sales
		sales.POST("",
			middleware.RequireAction(policy.ActionCreateSale),
			middleware.IdempotencyRequired(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
			}),
			h.Sale.CreateSale)

		sales.POST("/:id/payments",
			middleware.RequireAction(policy.ActionRecordPayment), h.Payment.RecordPayment)
		sales.POST("/:id/receipt",
			middleware.RequireAction(policy.ActionViewSales), h.Printer.PrintReceipt)
	}

	payments := protected.Group("/payments")
	payments.Use(middleware.RequireAction(policy.ActionViewSales))
	{
		payments.GET("", h.Payment.ListPayments)
		payments.GET("/:id", h.Payment.GetPayment)
	}
}

func registerStockRoutes(protected *gin.RouterGroup, h *Handlers) {
	stock := protected.Group("/stock")
	stock.Use(middleware.RequireAction(policy.ActionAdjustStock))
	{
		stock.GET("/movements", h.Stock.ListMovements)
		stock.POST("/movements", h.Stock.CreateMovement)
		stock.GET("/movements/:id", h.Stock.GetMovement)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireAction(policy.ActionViewReports))
	{
		reports.GET("/daily", h.Report.GetDailyReport)
		reports.GET("/sales", h.Report.GetSalesAnalytics)
		reports.GET("/cash", h.Report.GetCashReport)
		reports.GET("/inventory", h.Report.GetInventoryReport)
		reports.GET("/top-products", h.Report.GetTopProducts)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireAction(policy.ActionManageUsers))
	{
		users.GET("", h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.PUT("/:id", h.User.UpdateUser)
		users.PUT("/:id/role", h.User.ChangeRole)
		users.PUT("/:id/active", h.User.SetActive)
		users.DELETE("/:id", h.User.DeleteUser)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
