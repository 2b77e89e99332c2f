/*
Package models - Shift Planning Data Models

==============================================================================
FILE: internal/models/absence.go
==============================================================================

DESCRIPTION:
    A staff-declared preferred day off, already approved upstream (the
    approval workflow itself is an excluded external collaborator). The
    engine treats this as a soft preference, never a hard exclusion.
*/
package models

import "github.com/google/uuid"

// Absence is one approved preferred-day-off record for the target month.
type Absence struct {
	BaseModel
	StaffID   uuid.UUID `gorm:"type:text;not null" json:"staff_id"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
}
