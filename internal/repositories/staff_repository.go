/*
Package repositories - Shift Planning Data Access Layer

==============================================================================
FILE: internal/repositories/staff_repository.go
==============================================================================

DESCRIPTION:
    Provides data access for the staff roster. Read-mostly: the scheduling
    endpoint needs the full active roster for one solve, not filtered pages.
*/
package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/models"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create adds a new staff member.
func (r *StaffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

// FindByID finds a staff member by ID.
func (r *StaffRepository) FindByID(id uuid.UUID) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.First(&staff, "id = ?", id).Error
	return &staff, err
}

// FindAll returns the full roster, ordered for stable engine iteration.
func (r *StaffRepository) FindAll() ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.Order("display_order ASC, name ASC").Find(&staff).Error
	return staff, err
}

// Update saves changes to a staff member.
func (r *StaffRepository) Update(staff *models.Staff) error {
	return r.db.Save(staff).Error
}

// Delete soft-deletes a staff member.
func (r *StaffRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Staff{}, "id = ?", id).Error
}
