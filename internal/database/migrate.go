package database

import (
	"fmt"

	"blogicum/internal/models"

	"gorm.io/gorm"
)

// Migrate runs gorm auto-migration for every domain model. Order matters:
// referenced tables first so foreign key constraints can be created.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
