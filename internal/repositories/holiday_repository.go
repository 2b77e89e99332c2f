/*
Package repositories - Shift Planning Data Access Layer

==============================================================================
FILE: internal/repositories/holiday_repository.go
==============================================================================

DESCRIPTION:
    Provides data access for facility closure days.
*/
package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/models"
)

type HolidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// Create records a facility holiday.
func (r *HolidayRepository) Create(holiday *models.Holiday) error {
	return r.db.Create(holiday).Error
}

// FindByDateRange returns every holiday whose date falls within
// [startDate, endDate] (both "YYYY-MM-DD").
func (r *HolidayRepository) FindByDateRange(startDate, endDate string) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Where("date BETWEEN ? AND ?", startDate, endDate).Find(&holidays).Error
	return holidays, err
}

// Delete removes a holiday record.
func (r *HolidayRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Holiday{}, "id = ?", id).Error
}
