/*
Package engine - Shift Generation Engine

==============================================================================
FILE: internal/engine/constraints.go
==============================================================================

DESCRIPTION:
    The Constraint Builder: translates the staff/task/requirement/absence/
    holiday rules into cpmodel constraints over the VariableModel. This is
    the largest single component of the engine.

DEVELOPER GUIDELINES:
    Each hard constraint is its own method, named after the rule ID (C1, C2,
    ...), so a reviewer can check this file against the rule list one
    function at a time. S2 registers penalty variables into the
    PenaltySet rather than hard-zeroing anything; S1 is added as a hard
    upper bound and registers no penalty.
*/
package engine

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// driverMin is the C6 driver floor: a non-holiday day must have at least
// this many qualifying drivers working, when enough qualify to make the
// floor achievable at all.
const driverMin = 6

// PenaltySet collects every soft-constraint penalty variable so the Solver
// Driver can minimize their sum.
type PenaltySet struct {
	vars []cpmodel.BoolVar
}

func (p *PenaltySet) add(v cpmodel.BoolVar) {
	p.vars = append(p.vars, v)
}

// Sum returns a LinearExpr over every collected penalty variable, suitable
// for passing to cpmodel's Minimize.
func (p *PenaltySet) Sum() cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for _, v := range p.vars {
		expr.Add(v)
	}
	return expr
}

// ConstraintBuilder wires every hard and soft rule into one model.
type ConstraintBuilder struct {
	model    *cpmodel.CpModelBuilder
	vm       *VariableModel
	cal      *Calendar
	taskCats []TaskCategory // parallel to vm.Tasks
	penalty  PenaltySet
}

// NewConstraintBuilder classifies every task once and prepares to add rules.
func NewConstraintBuilder(model *cpmodel.CpModelBuilder, vm *VariableModel) *ConstraintBuilder {
	cats := make([]TaskCategory, len(vm.Tasks))
	for i, t := range vm.Tasks {
		cats[i] = ClassifyTask(t.Name)
	}
	return &ConstraintBuilder{
		model:    model,
		vm:       vm,
		cal:      vm.Cal,
		taskCats: cats,
	}
}

// zero forces a decision variable to 0 (used by every exclusion rule).
func (cb *ConstraintBuilder) zero(v cpmodel.BoolVar) {
	cb.model.AddEquality(v, cpmodel.NewConstant(0))
}

// BuildHard adds C1, C2, C4-C11, and C-rest (if configured).
func (cb *ConstraintBuilder) BuildHard(reqByDateTask map[requirementKey]int, additionalDays *int) {
	cb.addC1UniqueAssignment()
	cb.addC2MeetRequirements(reqByDateTask)
	cb.addC4NursingExclusivity()
	cb.addC5TrainingOnlyExclusivity()
	cb.addC6DriverFloor()
	cb.addC7HolidayClosure()
	cb.addC8LeadershipEligibility()
	cb.addC9LicenseRequirements()
	cb.addC10PartTimersDontDrive()
	cb.addC11TrainingQualification()
	if additionalDays != nil {
		cb.addCRestMonthlyRest(*additionalDays)
	}
}

// BuildSoft adds S1 (hard-expressed cap) and S2 (true soft penalty) and
// returns the accumulated penalty set for the Solver Driver's objective.
func (cb *ConstraintBuilder) BuildSoft(workLimits []int, absences []AbsenceInput) *PenaltySet {
	cb.addS1WorkCap(workLimits)
	cb.addS2HonorAbsences(absences)
	return &cb.penalty
}

// requirementKey indexes a (day-of-month, task-index) requirement.
type requirementKey struct {
	day     int
	taskIdx int
}

// C1 — unique assignment per staff per day: Σ_t x[s,d,t] ≤ 1.
func (cb *ConstraintBuilder) addC1UniqueAssignment() {
	for si := range cb.vm.Staff {
		for _, d := range cb.cal.Days() {
			cb.model.AddAtMostOne(cb.vm.TasksForStaffDay(si, d)...)
		}
	}
}

// C2 — meet daily requirements exactly, skipping holiday days (C7 already
// forces those to zero).
func (cb *ConstraintBuilder) addC2MeetRequirements(reqByDateTask map[requirementKey]int) {
	for key, count := range reqByDateTask {
		if cb.cal.IsFacilityHoliday(key.day) {
			continue
		}
		staffVars := cb.vm.StaffForDayTask(key.day, key.taskIdx)
		expr := cpmodel.NewLinearExpr()
		for _, v := range staffVars {
			expr.Add(v)
		}
		cb.model.AddEquality(expr, cpmodel.NewConstant(int64(count)))
	}
}

// C4 — nursing exclusivity: non-nurse staff never assigned a nursing task.
func (cb *ConstraintBuilder) addC4NursingExclusivity() {
	for ti, cat := range cb.taskCats {
		if !cat.Nursing {
			continue
		}
		for si, s := range cb.vm.Staff {
			if s.IsNurse {
				continue
			}
			for _, d := range cb.cal.Days() {
				cb.zero(cb.vm.X(si, d, ti))
			}
		}
	}
}

// C5 — training-only staff confined to training tasks.
func (cb *ConstraintBuilder) addC5TrainingOnlyExclusivity() {
	for si, s := range cb.vm.Staff {
		if !s.CanOnlyTrain {
			continue
		}
		for ti, cat := range cb.taskCats {
			if cat.Training {
				continue
			}
			for _, d := range cb.cal.Days() {
				cb.zero(cb.vm.X(si, d, ti))
			}
		}
	}
}

// C6 — minimum drivers per non-holiday day, when enough staff qualify.
func (cb *ConstraintBuilder) addC6DriverFloor() {
	var driverIdx []int
	for si, s := range cb.vm.Staff {
		if s.isDriver() {
			driverIdx = append(driverIdx, si)
		}
	}
	if len(driverIdx) < driverMin {
		return
	}
	for _, d := range cb.cal.Days() {
		if cb.cal.IsFacilityHoliday(d) {
			continue
		}
		expr := cpmodel.NewLinearExpr()
		for _, si := range driverIdx {
			for ti := range cb.vm.Tasks {
				expr.Add(cb.vm.X(si, d, ti))
			}
		}
		cb.model.AddGreaterOrEqual(expr, cpmodel.NewConstant(driverMin))
	}
}

// C7 — facility holiday closure: no variable is 1 on a holiday day.
func (cb *ConstraintBuilder) addC7HolidayClosure() {
	for _, d := range cb.cal.Days() {
		if !cb.cal.IsFacilityHoliday(d) {
			continue
		}
		for si := range cb.vm.Staff {
			for ti := range cb.vm.Tasks {
				cb.zero(cb.vm.X(si, d, ti))
			}
		}
	}
}

// C8 — leadership eligibility: part-time and training-only staff excluded.
func (cb *ConstraintBuilder) addC8LeadershipEligibility() {
	for ti, cat := range cb.taskCats {
		if !cat.Leadership {
			continue
		}
		for si, s := range cb.vm.Staff {
			if s.canLead() {
				continue
			}
			for _, d := range cb.cal.Days() {
				cb.zero(cb.vm.X(si, d, ti))
			}
		}
	}
}

// C9 — driving license requirement per task type.
func (cb *ConstraintBuilder) addC9LicenseRequirements() {
	for ti, cat := range cb.taskCats {
		var excluded func(StaffInput) bool
		switch {
		case cat.Wagon:
			excluded = func(s StaffInput) bool { return !s.hasWagonLicense() }
		case cat.StandardCar:
			excluded = func(s StaffInput) bool { return !s.hasStandardLicense() }
		case cat.GenericDrive:
			excluded = func(s StaffInput) bool { return !s.hasStandardLicense() }
		default:
			continue
		}
		for si, s := range cb.vm.Staff {
			if !excluded(s) {
				continue
			}
			for _, d := range cb.cal.Days() {
				cb.zero(cb.vm.X(si, d, ti))
			}
		}
	}
}

// C10 — part-timers never drive (generic-driving tasks only).
func (cb *ConstraintBuilder) addC10PartTimersDontDrive() {
	for ti, cat := range cb.taskCats {
		if !cat.GenericDrive {
			continue
		}
		for si, s := range cb.vm.Staff {
			if !s.IsPartTime {
				continue
			}
			for _, d := range cb.cal.Days() {
				cb.zero(cb.vm.X(si, d, ti))
			}
		}
	}
}

// C11 — training qualification: only nurses and training-only staff may
// take a training task.
func (cb *ConstraintBuilder) addC11TrainingQualification() {
	for ti, cat := range cb.taskCats {
		if !cat.Training {
			continue
		}
		for si, s := range cb.vm.Staff {
			if s.canTrain() {
				continue
			}
			for _, d := range cb.cal.Days() {
				cb.zero(cb.vm.X(si, d, ti))
			}
		}
	}
}

// C-rest — optional strict monthly rest-day equality.
func (cb *ConstraintBuilder) addCRestMonthlyRest(additionalDays int) {
	requiredRest := cb.cal.CountSaturdays() + additionalDays
	requiredWork := cb.cal.DaysInMonth - requiredRest

	for si := range cb.vm.Staff {
		expr := cpmodel.NewLinearExpr()
		for _, d := range cb.cal.Days() {
			for ti := range cb.vm.Tasks {
				expr.Add(cb.vm.X(si, d, ti))
			}
		}
		cb.model.AddEquality(expr, cpmodel.NewConstant(int64(requiredWork)))
	}
}

// S1 — monthly work cap, implemented as a hard inequality rather than a
// penalty term.
func (cb *ConstraintBuilder) addS1WorkCap(workLimits []int) {
	for si := range cb.vm.Staff {
		expr := cpmodel.NewLinearExpr()
		for _, d := range cb.cal.Days() {
			for ti := range cb.vm.Tasks {
				expr.Add(cb.vm.X(si, d, ti))
			}
		}
		cb.model.AddLessOrEqual(expr, cpmodel.NewConstant(int64(workLimits[si])))
	}
}

// S2 — honor preferred days off via a penalty variable p per absence,
// constrained so p equals the logical OR of that staff member's tasks on
// that day: x[t] ≤ p for every t, and p ≤ Σ_t x[t].
func (cb *ConstraintBuilder) addS2HonorAbsences(absences []AbsenceInput) {
	staffIdx := make(map[string]int, len(cb.vm.Staff))
	for i, s := range cb.vm.Staff {
		staffIdx[s.ID] = i
	}

	for _, a := range absences {
		d, ok := cb.cal.DayOfMonth(a.Date)
		if !ok {
			continue // malformed or out-of-month date, silently skipped
		}
		si, ok := staffIdx[a.StaffID]
		if !ok {
			continue
		}

		p := cb.model.NewBoolVar().WithName("absence_penalty")

		sum := cpmodel.NewLinearExpr()
		for ti := range cb.vm.Tasks {
			x := cb.vm.X(si, d, ti)
			cb.model.AddLessOrEqual(x, p) // p ≥ x[s,d,t]
			sum.Add(x)
		}
		cb.model.AddLessOrEqual(p, sum) // p ≤ Σ_t x[s,d,t]

		cb.penalty.add(p)
	}
}
