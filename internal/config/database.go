package config

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recruitment/interview-assistant/internal/models"
)

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.GetDatabaseDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.GetDatabaseDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.Driver == "sqlite" {
		if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
			log.Printf("⚠️  Failed to enable WAL mode: %v", err)
		}
	}

	log.Printf("✅ Database connected successfully (%s)", cfg.Database.Driver)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("✅ Database migration completed")

	return db, nil
}

// Migrate creates or updates the roles and candidates tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Role{},
		&models.Candidate{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
