package database

import (
	"fmt"
	"log"

	"github.com/centerhire/centerhire-api/internal/config"
	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Auth
		&entity.User{},

		// Master data
		&entity.Client{},
		&entity.PlateType{},
		&entity.BusinessProfile{},

		// Transaction documents
		&entity.Challan{},
		&entity.ChallanItem{},
		&entity.ReturnChallan{},
		&entity.ReturnItem{},

		// Billing
		&entity.Bill{},
		&entity.BillItem{},
		&entity.BillCharge{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (plate types,
// business profile, optional admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Standard centering-plate sizes with starter rates
	plateTypes := []entity.PlateType{
		{Size: "2x3", RatePerDay: 2.00},
		{Size: "2x2", RatePerDay: 1.75},
		{Size: "2x1.5", RatePerDay: 1.50},
		{Size: "2x1", RatePerDay: 1.25},
		{Size: "2x0.75", RatePerDay: 1.00},
	}

	for i := range plateTypes {
		var existing entity.PlateType
		if err := db.Where("size = ?", plateTypes[i].Size).First(&existing).Error; err != nil {
			if err := db.Create(&plateTypes[i]).Error; err != nil {
				log.Printf("Warning: failed to create plate type %s: %v", plateTypes[i].Size, err)
			}
		}
	}

	// Business profile singleton
	var profileCount int64
	db.Model(&entity.BusinessProfile{}).Count(&profileCount)
	if profileCount == 0 {
		profile := entity.BusinessProfile{
			Name:              viper.GetString("BUSINESS_NAME"),
			Site:              viper.GetString("BUSINESS_SITE"),
			Mobile:            viper.GetString("BUSINESS_MOBILE"),
			Address:           viper.GetString("BUSINESS_ADDRESS"),
			DefaultRatePerDay: viper.GetFloat64("BUSINESS_DEFAULT_RATE"),
		}
		if profile.Name == "" {
			profile.Name = "Centering Plates Rental"
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Printf("Warning: failed to create business profile: %v", err)
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Admin"
				}
				adminUser := entity.User{
					Name:     adminName,
					Email:    adminEmail,
					Password: string(hashedPassword),
					Role:     "admin",
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
