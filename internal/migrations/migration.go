package migrations

import (
	"fmt"
	"storefront/internal/models"
	"storefront/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunMigrations creates the collection table.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := db.AutoMigrate(&models.Collection{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// SeedCatalog writes the starter catalog unless a catalog already exists.
func SeedCatalog(products repository.ProductRepository, logger *zap.Logger) error {
	seeded, err := products.Seed()
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	if seeded {
		logger.Info("Starter catalog created", zap.Int("products", len(repository.StarterCatalog())))
	} else {
		logger.Info("Catalog already exists, skipping seed")
	}
	return nil
}
