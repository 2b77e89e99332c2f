/*
Package models - Shift Planning Data Models

==============================================================================
FILE: internal/models/task.go
==============================================================================

DESCRIPTION:
    Defines the Task catalog entry. Task semantics (nursing, training,
    leadership, driving) are inferred from keyword substrings in Name by
    internal/engine/taskclass.go, not stored as separate columns, so the
    catalog matches what the facility actually types into the UI.
*/
package models

// Task represents one row in the daily-task catalog.
type Task struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}
