/*
Package services - Schedule Generation Service

==============================================================================
FILE: internal/services/schedule_service.go
==============================================================================

DESCRIPTION:
    Wraps the scheduling engine and the spreadsheet exporter into the one
    operation the API handler calls: take a generation request, produce a
    solved schedule and its workbook. Every engine input comes from the
    request itself; no repository is consulted.

DEVELOPER GUIDELINES:
    OK to modify: Add new generation options
    CAUTION: the request-to-engine.Input mapping must stay lossless for
    every field the engine reads directly
*/
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/config"
	"github.com/caretech/shiftplan/internal/dtos"
	"github.com/caretech/shiftplan/internal/engine"
	"github.com/caretech/shiftplan/internal/export"
)

// ScheduleService handles schedule-generation business logic.
type ScheduleService struct {
	db        *gorm.DB
	appConfig *config.AppConfig
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(db *gorm.DB, appConfig *config.AppConfig) *ScheduleService {
	return &ScheduleService{
		db:        db,
		appConfig: appConfig,
	}
}

// Generate solves req and writes the resulting workbook, returning both the
// structured result and the path of the written file.
func (s *ScheduleService) Generate(ctx context.Context, req dtos.GenerateScheduleRequest) (*engine.Result, string, error) {
	input := toEngineInput(req, s.appConfig)

	result, err := engine.GenerateSchedule(ctx, input)
	if err != nil {
		return nil, "", err
	}

	cal := engine.NewCalendar(req.Year, req.Month, req.Holidays)
	path, err := export.ExportShiftWorkbook(result, cal, s.appConfig.ScheduleOutputDir)
	if err != nil {
		return nil, "", err
	}

	return result, path, nil
}

func toEngineInput(req dtos.GenerateScheduleRequest, cfg *config.AppConfig) engine.Input {
	staff := make([]engine.StaffInput, len(req.Staff))
	for i, s := range req.Staff {
		staff[i] = engine.StaffInput{
			ID:           s.ID,
			Name:         s.Name,
			WorkLimit:    s.WorkLimit,
			LicenseType:  s.LicenseType,
			IsPartTime:   s.IsPartTime,
			CanOnlyTrain: s.CanOnlyTrain,
			IsNurse:      s.IsNurse,
		}
	}

	tasks := make([]engine.TaskInput, len(req.Tasks))
	for i, t := range req.Tasks {
		tasks[i] = engine.TaskInput{ID: t.ID, Name: t.Name}
	}

	requirements := make([]engine.RequirementInput, len(req.Requirements))
	for i, r := range req.Requirements {
		requirements[i] = engine.RequirementInput{Date: r.Date, TaskID: r.TaskID, Count: r.Count}
	}

	absences := make([]engine.AbsenceInput, len(req.Absences))
	for i, a := range req.Absences {
		absences[i] = engine.AbsenceInput{StaffID: a.StaffID, Date: a.Date}
	}

	return engine.Input{
		Staff:            staff,
		Tasks:            tasks,
		Requirements:     requirements,
		Absences:         absences,
		Holidays:         req.Holidays,
		Year:             req.Year,
		Month:            req.Month,
		AdditionalDays:   req.AdditionalDays,
		RandomSeed:       cfg.SolverRandomSeed,
		TimeLimitSeconds: cfg.SolverTimeLimitSeconds,
	}
}

// fromEngineResult converts the engine's output into response DTOs.
func fromEngineResult(result *engine.Result) dtos.StructuredResultResponse {
	byDate := make(map[string][]dtos.AssignmentResponse, len(result.ByDate))
	for date, assignments := range result.ByDate {
		out := make([]dtos.AssignmentResponse, len(assignments))
		for i, a := range assignments {
			out[i] = dtos.AssignmentResponse{
				StaffID:   a.StaffID,
				StaffName: a.StaffName,
				TaskID:    a.TaskID,
				TaskName:  a.TaskName,
				IsNurse:   a.IsNurse,
			}
		}
		byDate[date] = out
	}

	byStaff := make([]dtos.StaffScheduleResponse, len(result.ByStaff))
	for i, sched := range result.ByStaff {
		byStaff[i] = dtos.StaffScheduleResponse{
			StaffID:   sched.StaffID,
			StaffName: sched.StaffName,
			Shifts:    sched.Shifts,
		}
	}

	return dtos.StructuredResultResponse{ByDate: byDate, ByStaff: byStaff}
}

// ToResponse builds the full success response for a generated schedule.
func ToResponse(result *engine.Result, path string) dtos.GenerateScheduleResponse {
	return dtos.GenerateScheduleResponse{
		SpreadsheetPath:  path,
		StructuredResult: fromEngineResult(result),
	}
}
