/*
Package engine - Shift Generation Engine

==============================================================================
FILE: internal/engine/solver.go
==============================================================================

DESCRIPTION:
    The Solver Driver: hands the fully-built CpModelBuilder to CP-SAT with a
    deterministic random seed and a wall-clock time limit, and translates the
    raw response status into the engine's own success/no-solution outcome.
*/
package engine

import (
	"context"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	appErrors "github.com/caretech/shiftplan/internal/errors"
)

// defaultTimeLimitSeconds is used when Input.TimeLimitSeconds is zero.
const defaultTimeLimitSeconds = 30.0

// SolveResult carries the raw solver response plus enough bookkeeping for the
// Result Extractor to read variable values back out.
type SolveResult struct {
	Response       *cpmodel.CpSolverResponse
	ObjectiveValue float64
}

// Solve minimizes the given penalty objective subject to every constraint
// already added to model, and returns the solver's response.
func Solve(ctx context.Context, model *cpmodel.CpModelBuilder, penalties *PenaltySet, seed int64, timeLimitSeconds float64) (*SolveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrServiceUnavailable.WithMessage("context cancelled before solve"))
	}

	if timeLimitSeconds <= 0 {
		timeLimitSeconds = defaultTimeLimitSeconds
	}

	model.Minimize(penalties.Sum())

	m, err := model.Model()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.WithMessage("failed to instantiate the CP model"))
	}

	params := &cpmodel.SatParameters{
		RandomSeed:       &seed,
		MaxTimeInSeconds: &timeLimitSeconds,
		NumSearchWorkers: int32Ptr(1),
	}

	response, err := cpmodel.SolveCpModelWithParameters(m, params)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNoSolution)
	}

	status := response.GetStatus()
	if status != cpmodel.CpSolverStatus_OPTIMAL && status != cpmodel.CpSolverStatus_FEASIBLE {
		return nil, appErrors.ErrNoSolution
	}

	return &SolveResult{
		Response:       response,
		ObjectiveValue: response.GetObjectiveValue(),
	}, nil
}

func int32Ptr(v int32) *int32 {
	return &v
}
