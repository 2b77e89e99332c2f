/*
Package repositories - Shift Planning Data Access Layer

==============================================================================
FILE: internal/repositories/task_repository.go
==============================================================================

DESCRIPTION:
    Provides data access for the daily-task catalog.
*/
package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the catalog.
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID.
func (r *TaskRepository) FindByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	return &task, err
}

// FindAll returns the full task catalog in creation order.
func (r *TaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Order("created_at ASC").Find(&tasks).Error
	return tasks, err
}

// Delete soft-deletes a task.
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}
