package database

import (
	"fmt"
	"log"

	"github.com/amorgan/brandhub/internal/config"
	"github.com/amorgan/brandhub/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the sqlite database for the GORM store variant.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLiteDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// An in-memory sqlite database exists per connection; a second pooled
	// connection would see an empty schema.
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Connected to sqlite database: %s", cfg.SQLiteDSN)

	return db, nil
}

// AutoMigrate creates the five entity tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Platform{},
		&models.BrandSettings{},
		&models.ContentPost{},
		&models.Analytics{},
	)
}

// Close closes the underlying database connection.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get underlying SQL DB for close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
