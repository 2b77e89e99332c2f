/*
Package engine - Shift Generation Engine

==============================================================================
FILE: internal/engine/variables.go
==============================================================================

DESCRIPTION:
    The Variable Model: materializes one boolean decision variable per
    (staff, day-of-month, task) triple and provides safe, zero-value-free
    lookup for the constraint builder and result extractor.
*/
package engine

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// varKey indexes one decision variable x[s,d,t].
type varKey struct {
	staffIdx int
	day      int
	taskIdx  int
}

// VariableModel owns every x[s,d,t] boolean variable for one solve.
type VariableModel struct {
	model *cpmodel.CpModelBuilder
	vars  map[varKey]cpmodel.BoolVar
	Staff []StaffInput
	Tasks []TaskInput
	Cal   *Calendar
}

// NewVariableModel creates one boolean variable for every (staff, day, task)
// triple within the target month.
func NewVariableModel(model *cpmodel.CpModelBuilder, staff []StaffInput, tasks []TaskInput, cal *Calendar) *VariableModel {
	vm := &VariableModel{
		model: model,
		vars:  make(map[varKey]cpmodel.BoolVar, len(staff)*cal.DaysInMonth*len(tasks)),
		Staff: staff,
		Tasks: tasks,
		Cal:   cal,
	}

	for si := range staff {
		for _, d := range cal.Days() {
			for ti := range tasks {
				name := fmt.Sprintf("x_s%d_d%d_t%d", si, d, ti)
				vm.vars[varKey{si, d, ti}] = model.NewBoolVar().WithName(name)
			}
		}
	}

	return vm
}

// X returns the decision variable for staff index si, day d, task index ti.
// Callers must only pass indices produced by iterating vm.Staff/vm.Tasks and
// days from vm.Cal.Days() — those are the only keys guaranteed to exist.
func (vm *VariableModel) X(si, d, ti int) cpmodel.BoolVar {
	v, ok := vm.vars[varKey{si, d, ti}]
	if !ok {
		panic(fmt.Sprintf("engine: no decision variable for staff=%d day=%d task=%d", si, d, ti))
	}
	return v
}

// TasksForStaffDay returns every x[s,d,·] variable for one (staff, day) pair,
// in task-catalog order.
func (vm *VariableModel) TasksForStaffDay(si, d int) []cpmodel.BoolVar {
	out := make([]cpmodel.BoolVar, len(vm.Tasks))
	for ti := range vm.Tasks {
		out[ti] = vm.X(si, d, ti)
	}
	return out
}

// StaffForDayTask returns every x[·,d,t] variable for one (day, task) pair,
// in staff-roster order.
func (vm *VariableModel) StaffForDayTask(d, ti int) []cpmodel.BoolVar {
	out := make([]cpmodel.BoolVar, len(vm.Staff))
	for si := range vm.Staff {
		out[si] = vm.X(si, d, ti)
	}
	return out
}
