/*
Package engine - Shift Generation Engine

==============================================================================
FILE: internal/engine/taskclass.go
==============================================================================

DESCRIPTION:
    Classifies a Task by keyword substring in its Name. The keyword sets are
    named tables rather than literals inlined in the constraint builder, so
    the mapping stays visible and independently testable, even though it
    remains coupled to the Japanese UI-facing task names the facility
    actually types in.

DEVELOPER GUIDELINES:
    A task may match more than one category; classification never short
    circuits on the first match.
*/
package engine

import "strings"

var (
	nursingKeywords    = []string{"看護"}
	trainingKeywords   = []string{"訓練"}
	leadershipKeywords = []string{"リーダー", "サブリーダー"}
	wagonKeywords      = []string{"ワゴン"}
	standardCarKeywords = []string{"普通車"}
	genericDriveKeywords = []string{"運転", "送迎"}
)

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// TaskCategory is the result of classifying one Task's name.
type TaskCategory struct {
	Nursing     bool
	Training    bool
	Leadership  bool
	Wagon       bool
	StandardCar bool
	GenericDrive bool
}

// ClassifyTask inspects a task name for each keyword family.
func ClassifyTask(name string) TaskCategory {
	return TaskCategory{
		Nursing:      containsAny(name, nursingKeywords),
		Training:     containsAny(name, trainingKeywords),
		Leadership:   containsAny(name, leadershipKeywords),
		Wagon:        containsAny(name, wagonKeywords),
		StandardCar:  containsAny(name, standardCarKeywords),
		GenericDrive: containsAny(name, genericDriveKeywords),
	}
}

// IsDrivingTask reports whether a task requires any driving license at all
// (wagon, standard-car, or generic driving). C9 checks the individual
// category flags rather than calling this.
func (c TaskCategory) IsDrivingTask() bool {
	return c.Wagon || c.StandardCar || c.GenericDrive
}
