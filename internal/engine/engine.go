/*
Package engine - Shift Generation Engine

==============================================================================
FILE: internal/engine/engine.go
==============================================================================

DESCRIPTION:
    GenerateSchedule wires the Calendar, Variable Model, Constraint Builder,
    Solver Driver, and Result Extractor into the one operation callers need:
    roster + tasks + requirements + absences + holidays in, a two-projection
    Result out.
*/
package engine

import (
	"context"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	appErrors "github.com/caretech/shiftplan/internal/errors"
)

// GenerateSchedule builds and solves one month's shift-assignment problem.
func GenerateSchedule(ctx context.Context, in Input) (*Result, error) {
	if len(in.Staff) == 0 || len(in.Tasks) == 0 {
		return nil, appErrors.ErrInvalidScheduleRequest
	}

	cal := NewCalendar(in.Year, in.Month, in.Holidays)

	model := cpmodel.NewCpModelBuilder()
	vm := NewVariableModel(model, in.Staff, in.Tasks, cal)

	reqByDateTask := make(map[requirementKey]int, len(in.Requirements))
	taskIdx := make(map[string]int, len(in.Tasks))
	for i, t := range in.Tasks {
		taskIdx[t.ID] = i
	}
	for _, r := range in.Requirements {
		d, ok := cal.DayOfMonth(r.Date)
		if !ok {
			continue // out-of-month or malformed requirement date, ignored
		}
		ti, ok := taskIdx[r.TaskID]
		if !ok {
			continue // requirement for a task outside the catalog, ignored
		}
		reqByDateTask[requirementKey{day: d, taskIdx: ti}] = r.Count
	}

	cb := NewConstraintBuilder(model, vm)
	cb.BuildHard(reqByDateTask, in.AdditionalDays)

	workLimits := make([]int, len(in.Staff))
	for i, s := range in.Staff {
		workLimits[i] = s.WorkLimit
	}
	penalties := cb.BuildSoft(workLimits, in.Absences)

	sr, err := Solve(ctx, model, penalties, in.RandomSeed, in.TimeLimitSeconds)
	if err != nil {
		return nil, err
	}

	return Extract(vm, sr), nil
}
