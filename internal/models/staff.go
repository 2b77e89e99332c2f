/*
Package models - Shift Planning Data Models

==============================================================================
FILE: internal/models/staff.go
==============================================================================

DESCRIPTION:
    Defines the Staff model - a care-facility employee eligible for shift
    assignment. Capability flags (license, nursing, training-only) drive the
    hard constraints applied by the scheduling engine; see internal/engine.

DEVELOPER GUIDELINES:
    OK to modify: add new capability flags, keep them boolean/enum
    CAUTION: the engine does not read this model; it reads
    engine.StaffInput (internal/engine/types.go), whose predicates mirror
    the ones below — a rule change here needs the same change there
*/
package models

import "github.com/google/uuid"

// LicenseType enumerates the driving qualifications a staff member may hold.
type LicenseType int

const (
	LicenseNone     LicenseType = 0
	LicenseStandard LicenseType = 1
	LicenseWagon    LicenseType = 2
)

// Staff represents one roster entry for the target month.
type Staff struct {
	BaseModel
	Name          string      `gorm:"type:varchar(100);not null" json:"name"`
	WorkLimit     int         `gorm:"not null" json:"work_limit"`
	LicenseType   LicenseType `gorm:"not null;default:0" json:"license_type"`
	IsPartTime    bool        `gorm:"not null;default:false" json:"is_part_time"`
	CanOnlyTrain  bool        `gorm:"not null;default:false" json:"can_only_train"`
	IsNurse       bool        `gorm:"not null;default:false" json:"is_nurse"`
	DisplayOrder  int         `gorm:"not null;default:0" json:"display_order"`
}

// IsDriver reports whether the staff member counts toward the C6 driver floor.
func (s *Staff) IsDriver() bool {
	return s.LicenseType >= LicenseStandard && !s.IsPartTime
}

// HasWagonLicense reports eligibility for wagon-driving tasks (C9).
func (s *Staff) HasWagonLicense() bool {
	return s.LicenseType == LicenseWagon
}

// HasStandardLicense reports eligibility for standard-car or generic driving tasks (C9).
func (s *Staff) HasStandardLicense() bool {
	return s.LicenseType >= LicenseStandard
}

// CanLead reports eligibility for leadership tasks (C8).
func (s *Staff) CanLead() bool {
	return !s.IsPartTime && !s.CanOnlyTrain
}

// CanTrain reports eligibility for training tasks (C11).
func (s *Staff) CanTrain() bool {
	return s.IsNurse || s.CanOnlyTrain
}
