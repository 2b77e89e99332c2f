/*
Package database - Shift Planning Database Migrations

==============================================================================
FILE: internal/database/migrations.go
==============================================================================

DESCRIPTION:
    Handles automatic database schema migrations using GORM AutoMigrate.
    Creates and updates tables for all application models. Called at
    application startup to ensure schema is current.

DEVELOPER GUIDELINES:
    OK to modify: Add new models to AutoMigrate list
    CAUTION: Removing models (may cause data loss)
*/
package database

import (
	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/models"
)

// Migrate performs database migrations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Staff{},
		&models.Task{},
		&models.Requirement{},
		&models.Absence{},
		&models.Holiday{},
		&models.MonthlyRestSetting{},
	)
}
