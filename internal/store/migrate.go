package store

import (
	"fmt"

	"event_manager/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Migrate creates or updates the users, events and registrations tables.
// It is safe to run against an empty or an already populated database.
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(&domain.User{}, &domain.Event{}, &domain.Registration{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logrus.Info("Migration completed.")
	return nil
}
