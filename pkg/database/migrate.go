package database

import (
	"fmt"
	"skinmapping/pkg/database/models"

	"gorm.io/gorm"
)

// RunMigrations creates or updates the tables used by the sinks and the API.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.SkinName{}); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}
