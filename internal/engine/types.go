/*
Package engine implements the shift-generation engine: the translation of
roster, task, requirement, absence, and holiday data into a constraint-
satisfaction problem, its solution via CP-SAT, and the extraction of results
in both calendar (by-date) and tabular (by-staff) projections.

==============================================================================
FILE: internal/engine/types.go
==============================================================================

DESCRIPTION:
    Plain input/output structs crossing the engine boundary. No database
    handle crosses this boundary — the engine package never imports
    gorm; callers (internal/services) are responsible
    for materializing these structs from whatever store they use.
*/
package engine

// StaffInput is one roster entry for the target month.
type StaffInput struct {
	ID           string
	Name         string
	WorkLimit    int
	LicenseType  int // 0:none, 1:standard car, 2:wagon
	IsPartTime   bool
	CanOnlyTrain bool
	IsNurse      bool
}

func (s StaffInput) isDriver() bool {
	return s.LicenseType >= 1 && !s.IsPartTime
}

func (s StaffInput) hasWagonLicense() bool {
	return s.LicenseType == 2
}

func (s StaffInput) hasStandardLicense() bool {
	return s.LicenseType >= 1
}

func (s StaffInput) canLead() bool {
	return !s.IsPartTime && !s.CanOnlyTrain
}

func (s StaffInput) canTrain() bool {
	return s.IsNurse || s.CanOnlyTrain
}

// TaskInput is one entry in the daily-task catalog.
type TaskInput struct {
	ID   string
	Name string
}

// RequirementInput pins an exact headcount to a (date, task) pair.
type RequirementInput struct {
	Date   string // YYYY-MM-DD
	TaskID string
	Count  int
}

// AbsenceInput is one approved preferred-day-off record.
type AbsenceInput struct {
	StaffID string
	Date    string // YYYY-MM-DD
}

// Input bundles everything one GenerateSchedule call needs.
type Input struct {
	Staff          []StaffInput
	Tasks          []TaskInput
	Requirements   []RequirementInput
	Absences       []AbsenceInput
	Holidays       []string // YYYY-MM-DD
	Year           int
	Month          int
	AdditionalDays *int // nil means no monthly-rest constraint (C-rest)

	// RandomSeed and TimeLimitSeconds configure the solver driver.
	// A TimeLimitSeconds of zero falls back to a 30-second limit;
	// RandomSeed is passed to the solver as given, zero included.
	RandomSeed      int64
	TimeLimitSeconds float64
}

// Assignment is one (staff, date, task) record in the solution.
type Assignment struct {
	StaffID   string
	StaffName string
	TaskID    string
	TaskName  string
	IsNurse   bool
}

// StaffSchedule is the by-staff projection: one row per staff member, with
// a date->task-name map (empty string for unassigned days).
type StaffSchedule struct {
	StaffID   string
	StaffName string
	Shifts    map[string]string // date -> task name, "" if unassigned
}

// Result is the two-projection output of a successful solve.
type Result struct {
	ByDate  map[string][]Assignment
	ByStaff []StaffSchedule
}
