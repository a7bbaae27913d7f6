package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kipsang/dukapos-api/internal/config"
	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Map unique constraint violations to gorm.ErrDuplicatedKey so the
		// repositories can translate them for their callers.
		TranslateError: true,
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
		// Account entities
		&entity.User{},

		// Catalog entities
		&entity.Category{},
		&entity.Supplier{},
		&entity.Product{},

		// Counterparty entities
		&entity.Customer{},
		&entity.Terminal{},

		// Transaction entities
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Payment{},
		&entity.StockMovement{},

		// System entities
		&entity.BusinessSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (admin user, default
// terminal, business settings)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

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
					adminName = "System Admin"
				}
				// Split admin name into first and last name
				firstName := adminName
				lastName := ""
				for i, c := range adminName {
					if c == ' ' {
						firstName = adminName[:i]
						lastName = adminName[i+1:]
						break
					}
				}
				adminUser := entity.User{
					ID:        uuid.New(),
					FirstName: firstName,
					LastName:  lastName,
					Username:  adminEmail,
					Email:     adminEmail,
					Password:  string(hashedPassword),
					Role:      enum.RoleAdmin,
					IsActive:  true,
					// Seeded credentials must be rotated on first login
					ForcePasswordChange: true,
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

	// Create the default terminal
	var existingTerminal entity.Terminal
	if err := db.Where("name = ?", "Main Counter").First(&existingTerminal).Error; err != nil {
		terminal := entity.Terminal{
			Name:     "Main Counter",
			IsActive: true,
		}
		if err := db.Create(&terminal).Error; err != nil {
			log.Printf("Warning: failed to create default terminal: %v", err)
		}
	}

	// Create the business settings row
	var existingSettings entity.BusinessSettings
	if err := db.First(&existingSettings).Error; err != nil {
		settings := entity.BusinessSettings{
			BusinessName: viper.GetString("BUSINESS_NAME"),
			Currency:     "KES",
		}
		if settings.BusinessName == "" {
			settings.BusinessName = "Duka POS"
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create business settings: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
