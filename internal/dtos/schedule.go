/*
Package dtos - Schedule Generation Data Transfer Objects

==============================================================================
FILE: internal/dtos/schedule.go
==============================================================================

DESCRIPTION:
    Request/response shapes for POST /api/v1/schedules/generate. Date fields
    are plain strings, not a strict-parsing Date type: the engine treats a
    malformed date as an ignored input (silently skipped, not logged),
    not as a request-rejection, so validation at this boundary stays
    deliberately permissive.
*/
package dtos

// StaffRequest is one roster entry in a generation request.
type StaffRequest struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	WorkLimit    int    `json:"work_limit"`
	LicenseType  int    `json:"license_type"`
	IsPartTime   bool   `json:"is_part_time"`
	CanOnlyTrain bool   `json:"can_only_train"`
	IsNurse      bool   `json:"is_nurse"`
}

// TaskRequest is one task-catalog entry.
type TaskRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// RequirementRequest pins an exact headcount to a (date, task) pair.
type RequirementRequest struct {
	Date   string `json:"date" binding:"required"`
	TaskID string `json:"task_id" binding:"required"`
	Count  int    `json:"count"`
}

// AbsenceRequest is one approved preferred-day-off record.
type AbsenceRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// GenerateScheduleRequest is the full body of a schedule generation request.
type GenerateScheduleRequest struct {
	Staff          []StaffRequest       `json:"staff" binding:"required,min=1"`
	Tasks          []TaskRequest        `json:"tasks" binding:"required,min=1"`
	Requirements   []RequirementRequest `json:"requirements"`
	Absences       []AbsenceRequest     `json:"absences"`
	Holidays       []string             `json:"holidays"`
	Year           int                  `json:"year" binding:"required"`
	Month          int                  `json:"month" binding:"required,min=1,max=12"`
	AdditionalDays *int                 `json:"additional_rest_days"`
}

// AssignmentResponse is one (staff, task) record within a date's response.
type AssignmentResponse struct {
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
	TaskID    string `json:"task_id"`
	TaskName  string `json:"task_name"`
	IsNurse   bool   `json:"is_nurse"`
}

// StaffScheduleResponse is the by-staff projection for one staff member.
type StaffScheduleResponse struct {
	StaffID   string            `json:"staff_id"`
	StaffName string            `json:"staff_name"`
	Shifts    map[string]string `json:"shifts"`
}

// StructuredResultResponse bundles both projections of a solved schedule.
type StructuredResultResponse struct {
	ByDate  map[string][]AssignmentResponse `json:"by_date"`
	ByStaff []StaffScheduleResponse         `json:"by_staff"`
}

// GenerateScheduleResponse is the success body of the generation endpoint.
type GenerateScheduleResponse struct {
	SpreadsheetPath  string                   `json:"spreadsheet_path"`
	StructuredResult StructuredResultResponse `json:"structured_result"`
}
