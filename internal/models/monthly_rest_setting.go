/*
Package models - Shift Planning Data Models

==============================================================================
FILE: internal/models/monthly_rest_setting.go
==============================================================================

DESCRIPTION:
    Optional per-month rest-day policy. When present, every staff member must
    work exactly (days_in_month - saturdays - additional_days) days that
    month (C-rest). Absent, the engine applies no such equality.
*/
package models

// MonthlyRestSetting configures the optional strict monthly rest-day policy.
type MonthlyRestSetting struct {
	BaseModel
	Year           int `gorm:"not null" json:"year"`
	Month          int `gorm:"not null" json:"month"`
	AdditionalDays int `gorm:"not null;default:0" json:"additional_days"`
}
