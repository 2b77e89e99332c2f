package engine

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

func newTestVariableModel(staffCount, taskCount, daysInMonth int) *VariableModel {
	staff := make([]StaffInput, staffCount)
	for i := range staff {
		staff[i] = StaffInput{ID: "s", Name: "s"}
	}
	tasks := make([]TaskInput, taskCount)
	for i := range tasks {
		tasks[i] = TaskInput{ID: "t", Name: "t"}
	}
	cal := &Calendar{Year: 2026, Month: 1, DaysInMonth: daysInMonth, holidays: map[int]bool{}}
	model := cpmodel.NewCpModelBuilder()
	return NewVariableModel(model, staff, tasks, cal)
}

func TestNewVariableModelCreatesOneVarPerTriple(t *testing.T) {
	vm := newTestVariableModel(3, 2, 5)
	if len(vm.vars) != 3*2*5 {
		t.Fatalf("len(vars) = %d, want %d", len(vm.vars), 3*2*5)
	}
}

func TestVariableModelXIsStable(t *testing.T) {
	vm := newTestVariableModel(2, 2, 3)
	a := vm.X(0, 1, 1)
	b := vm.X(0, 1, 1)
	if a != b {
		t.Error("X should return the same variable for the same key on repeated calls")
	}
}

func TestVariableModelXPanicsOnUnknownKey(t *testing.T) {
	vm := newTestVariableModel(1, 1, 1)
	defer func() {
		if recover() == nil {
			t.Error("expected X to panic for an out-of-range key")
		}
	}()
	vm.X(5, 5, 5)
}

func TestTasksForStaffDayOrder(t *testing.T) {
	vm := newTestVariableModel(2, 3, 4)
	got := vm.TasksForStaffDay(1, 2)
	if len(got) != 3 {
		t.Fatalf("len(TasksForStaffDay) = %d, want 3", len(got))
	}
	for ti, v := range got {
		if v != vm.X(1, 2, ti) {
			t.Errorf("TasksForStaffDay[%d] did not match X(1, 2, %d)", ti, ti)
		}
	}
}

func TestStaffForDayTaskOrder(t *testing.T) {
	vm := newTestVariableModel(3, 2, 4)
	got := vm.StaffForDayTask(2, 1)
	if len(got) != 3 {
		t.Fatalf("len(StaffForDayTask) = %d, want 3", len(got))
	}
	for si, v := range got {
		if v != vm.X(si, 2, 1) {
			t.Errorf("StaffForDayTask[%d] did not match X(%d, 2, 1)", si, si)
		}
	}
}
