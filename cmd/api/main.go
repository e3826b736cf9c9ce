package main

import (
	"log"
	"os"

	"github.com/centerhire/centerhire-api/internal/application/service"
	"github.com/centerhire/centerhire-api/internal/config"
	"github.com/centerhire/centerhire-api/internal/infrastructure/database"
	"github.com/centerhire/centerhire-api/internal/infrastructure/repository"
	"github.com/centerhire/centerhire-api/internal/presentation/http/handler"
	"github.com/centerhire/centerhire-api/internal/presentation/http/routes"
	"github.com/centerhire/centerhire-api/pkg/printer"
	"github.com/centerhire/centerhire-api/pkg/utils"
	"github.com/gin-gonic/gin"
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
	clientRepo := repository.NewClientRepository(db)
	challanRepo := repository.NewChallanRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	billRepo := repository.NewBillRepository(db)
	plateTypeRepo := repository.NewPlateTypeRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	txReader := repository.NewTransactionReader(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	clientService := service.NewClientService(clientRepo)
	challanService := service.NewChallanService(challanRepo, clientRepo)
	returnService := service.NewReturnService(returnRepo, clientRepo)
	plateTypeService := service.NewPlateTypeService(plateTypeRepo)
	profileService := service.NewProfileService(profileRepo)
	dashboardService := service.NewDashboardService(clientRepo, challanRepo, returnRepo, billRepo)
	calculator := service.NewBillingCalculator(nil)
	billingService := service.NewBillingService(txReader, billRepo, clientRepo, plateTypeRepo, profileRepo, calculator)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, billRepo, profileRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Client:    handler.NewClientHandler(clientService),
		Challan:   handler.NewChallanHandler(challanService),
		Return:    handler.NewReturnHandler(returnService),
		Bill:      handler.NewBillHandler(billingService),
		PlateType: handler.NewPlateTypeHandler(plateTypeService),
		Profile:   handler.NewProfileHandler(profileService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

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
