/*
Package models - Shift Planning Data Models

==============================================================================
FILE: internal/models/holiday.go
==============================================================================

DESCRIPTION:
    A facility closure day. No staff may be assigned on a Holiday date,
    regardless of requirements (C7).
*/
package models

// Holiday marks one date as a facility closure.
type Holiday struct {
	BaseModel
	Date string `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
}
