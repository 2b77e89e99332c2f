/*
Package repositories - Shift Planning Data Access Layer

==============================================================================
FILE: internal/repositories/requirement_repository.go
==============================================================================

DESCRIPTION:
    Provides data access for per-date, per-task staffing requirements.
*/
package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/models"
)

type RequirementRepository struct {
	db *gorm.DB
}

func NewRequirementRepository(db *gorm.DB) *RequirementRepository {
	return &RequirementRepository{db: db}
}

// Create adds a new staffing requirement.
func (r *RequirementRepository) Create(req *models.Requirement) error {
	return r.db.Create(req).Error
}

// FindByDateRange returns every requirement whose date falls within
// [startDate, endDate] (both "YYYY-MM-DD"), for one month's generation run.
func (r *RequirementRepository) FindByDateRange(startDate, endDate string) ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := r.db.Where("date BETWEEN ? AND ?", startDate, endDate).Find(&reqs).Error
	return reqs, err
}

// Delete removes a requirement.
func (r *RequirementRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Requirement{}, "id = ?", id).Error
}
