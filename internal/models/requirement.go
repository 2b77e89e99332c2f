/*
Package models - Shift Planning Data Models

==============================================================================
FILE: internal/models/requirement.go
==============================================================================

DESCRIPTION:
    A Requirement pins an exact headcount to a (date, task) pair. The engine
    treats this as an equality constraint (C2) on non-holiday days.
*/
package models

import "github.com/google/uuid"

// Requirement is an exact staffing need for one task on one date.
type Requirement struct {
	BaseModel
	Date      string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	TaskID    uuid.UUID `gorm:"type:text;not null" json:"task_id"`
	Count     int       `gorm:"not null" json:"count"`
}
