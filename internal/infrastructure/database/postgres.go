package database

import (
	"fmt"
	"log"

	"github.com/docugen/docugen-api/internal/config"
	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/enum"
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
		&entity.BusinessSettings{},
		&entity.DownloadCode{},
		&entity.DocumentCounter{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the per-type document counters. Each type starts
// at its own disjoint range so numbers never collide across types.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	for _, docType := range enum.AllDocumentTypes {
		var existing entity.DocumentCounter
		if err := db.Where("document_type = ?", docType).First(&existing).Error; err != nil {
			counter := entity.DocumentCounter{
				DocumentType: docType,
				NextValue:    docType.CounterSeed(),
			}
			if err := db.Create(&counter).Error; err != nil {
				log.Printf("Warning: failed to seed counter for %s: %v", docType, err)
			}
		}
	}

	return nil
}
