/*
Package repositories - Shift Planning Data Access Layer

==============================================================================
FILE: internal/repositories/absence_repository.go
==============================================================================

DESCRIPTION:
    Provides data access for approved preferred-day-off records. The
    approval workflow itself lives outside this system; by the time a row
    exists here it is already approved.
*/
package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/models"
)

type AbsenceRepository struct {
	db *gorm.DB
}

func NewAbsenceRepository(db *gorm.DB) *AbsenceRepository {
	return &AbsenceRepository{db: db}
}

// Create records an approved absence.
func (r *AbsenceRepository) Create(absence *models.Absence) error {
	return r.db.Create(absence).Error
}

// FindByDateRange returns every absence whose date falls within
// [startDate, endDate] (both "YYYY-MM-DD").
func (r *AbsenceRepository) FindByDateRange(startDate, endDate string) ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Where("date BETWEEN ? AND ?", startDate, endDate).Find(&absences).Error
	return absences, err
}

// Delete removes an absence record.
func (r *AbsenceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Absence{}, "id = ?", id).Error
}
