/*
Package engine - Shift Generation Engine

==============================================================================
FILE: internal/engine/extractor.go
==============================================================================

DESCRIPTION:
    The Result Extractor: reads boolean variable values back out of a solved
    CP-SAT response and projects them into the two shapes callers need — a
    by-date calendar view and a by-staff tabular view.

DEVELOPER GUIDELINES:
    Iteration order for both projections follows roster/catalog order, not
    map iteration, so repeated extraction of the same solved response is
    byte-for-byte stable.
*/
package engine

import "github.com/google/or-tools/ortools/sat/go/cpmodel"

// Extract walks every decision variable in vm and builds both projections
// of the solved schedule from sr.
func Extract(vm *VariableModel, sr *SolveResult) *Result {
	return &Result{
		ByDate:  extractByDate(vm, sr),
		ByStaff: extractByStaff(vm, sr),
	}
}

// extractByDate scans task-outer, staff-inner for each day, so within one
// date every staff member assigned to the first task precedes every staff
// member assigned to the second task, and so on — the same order the
// variables themselves were scanned in.
func extractByDate(vm *VariableModel, sr *SolveResult) map[string][]Assignment {
	byDate := make(map[string][]Assignment, vm.Cal.DaysInMonth)

	for _, d := range vm.Cal.Days() {
		date := vm.Cal.DateString(d)

		for ti, t := range vm.Tasks {
			for si, s := range vm.Staff {
				if !cpmodel.SolutionBooleanValue(sr.Response, vm.X(si, d, ti)) {
					continue
				}

				byDate[date] = append(byDate[date], Assignment{
					StaffID:   s.ID,
					StaffName: s.Name,
					TaskID:    t.ID,
					TaskName:  t.Name,
					IsNurse:   s.IsNurse,
				})
			}
		}
	}

	return byDate
}

// extractByStaff scans staff-outer, day, task-inner; C1 guarantees at most
// one hit per (staff, day), so the first match found can be taken directly.
func extractByStaff(vm *VariableModel, sr *SolveResult) []StaffSchedule {
	byStaff := make([]StaffSchedule, len(vm.Staff))

	for si, s := range vm.Staff {
		sched := StaffSchedule{
			StaffID:   s.ID,
			StaffName: s.Name,
			Shifts:    make(map[string]string, vm.Cal.DaysInMonth),
		}

		for _, d := range vm.Cal.Days() {
			date := vm.Cal.DateString(d)
			sched.Shifts[date] = ""

			for ti, t := range vm.Tasks {
				if !cpmodel.SolutionBooleanValue(sr.Response, vm.X(si, d, ti)) {
					continue
				}

				sched.Shifts[date] = t.Name
				break // C1 guarantees at most one task per staff per day
			}
		}

		byStaff[si] = sched
	}

	return byStaff
}
