/*
Package repositories - Shift Planning Data Access Layer

==============================================================================
FILE: internal/repositories/monthly_rest_repository.go
==============================================================================

DESCRIPTION:
    Provides data access for the optional per-month rest-day policy (C-rest).
*/
package repositories

import (
	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/models"
)

type MonthlyRestRepository struct {
	db *gorm.DB
}

func NewMonthlyRestRepository(db *gorm.DB) *MonthlyRestRepository {
	return &MonthlyRestRepository{db: db}
}

// Upsert creates or replaces the rest-day setting for (year, month).
func (r *MonthlyRestRepository) Upsert(setting *models.MonthlyRestSetting) error {
	var existing models.MonthlyRestSetting
	err := r.db.Where("year = ? AND month = ?", setting.Year, setting.Month).First(&existing).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		return r.db.Create(setting).Error
	case err != nil:
		return err
	default:
		existing.AdditionalDays = setting.AdditionalDays
		return r.db.Save(&existing).Error
	}
}

// FindByYearMonth returns the rest-day setting for (year, month), if any.
func (r *MonthlyRestRepository) FindByYearMonth(year, month int) (*models.MonthlyRestSetting, error) {
	var setting models.MonthlyRestSetting
	err := r.db.Where("year = ? AND month = ?", year, month).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
