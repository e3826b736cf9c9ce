package routes

import (
	"time"

	"github.com/centerhire/centerhire-api/internal/config"
	"github.com/centerhire/centerhire-api/internal/presentation/http/handler"
	"github.com/centerhire/centerhire-api/internal/presentation/http/middleware"
	"github.com/centerhire/centerhire-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Client    *handler.ClientHandler
	Challan   *handler.ChallanHandler
	Return    *handler.ReturnHandler
	Bill      *handler.BillHandler
	PlateType *handler.PlateTypeHandler
	Profile   *handler.ProfileHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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

		// Per-client-IP rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Business profile
	protected.GET("/profile", h.Profile.Get)
	protected.PUT("/profile", h.Profile.Update)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Clients
	clients := protected.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}

	// Challans
	challans := protected.Group("/challans")
	{
		challans.GET("", h.Challan.List)
		challans.POST("", h.Challan.Create)
		challans.GET("/:id", h.Challan.Get)
		challans.DELETE("/:id", h.Challan.Delete)
	}

	// Return challans
	returns := protected.Group("/returns")
	{
		returns.GET("", h.Return.List)
		returns.POST("", h.Return.Create)
		returns.GET("/:id", h.Return.Get)
		returns.DELETE("/:id", h.Return.Delete)
	}

	// Bills
	bills := protected.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", h.Bill.Create)
		bills.POST("/preview", h.Bill.Preview)
		bills.GET("/:id", h.Bill.Get)
		bills.DELETE("/:id", h.Bill.Delete)
		bills.POST("/:id/print", h.Printer.PrintBill)
	}

	// Plate types (rate table); mutations are admin only
	plateTypes := protected.Group("/plate-types")
	{
		plateTypes.GET("", h.PlateType.List)
		plateTypes.POST("", middleware.RequireRole("admin"), h.PlateType.Create)
		plateTypes.PUT("/:id", middleware.RequireRole("admin"), h.PlateType.Update)
		plateTypes.DELETE("/:id", middleware.RequireRole("admin"), h.PlateType.Delete)
	}

	// Printer
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
