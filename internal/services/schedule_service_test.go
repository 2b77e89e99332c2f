package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caretech/shiftplan/internal/config"
	"github.com/caretech/shiftplan/internal/dtos"
	"github.com/caretech/shiftplan/internal/engine"
)

func TestToEngineInputMapsEveryField(t *testing.T) {
	additional := 2
	req := dtos.GenerateScheduleRequest{
		Staff: []dtos.StaffRequest{
			{ID: "s1", Name: "山田", WorkLimit: 20, LicenseType: 2, IsPartTime: false, CanOnlyTrain: false, IsNurse: true},
		},
		Tasks: []dtos.TaskRequest{
			{ID: "t1", Name: "日勤看護"},
		},
		Requirements: []dtos.RequirementRequest{
			{Date: "2026-08-01", TaskID: "t1", Count: 1},
		},
		Absences: []dtos.AbsenceRequest{
			{StaffID: "s1", Date: "2026-08-05"},
		},
		Holidays:       []string{"2026-08-11"},
		Year:           2026,
		Month:          8,
		AdditionalDays: &additional,
	}
	cfg := &config.AppConfig{SolverRandomSeed: 7, SolverTimeLimitSeconds: 15}

	got := toEngineInput(req, cfg)

	assert.Equal(t, "s1", got.Staff[0].ID)
	assert.Equal(t, "山田", got.Staff[0].Name)
	assert.Equal(t, 20, got.Staff[0].WorkLimit)
	assert.Equal(t, 2, got.Staff[0].LicenseType)
	assert.True(t, got.Staff[0].IsNurse)

	assert.Equal(t, "t1", got.Tasks[0].ID)
	assert.Equal(t, "日勤看護", got.Tasks[0].Name)

	assert.Equal(t, "2026-08-01", got.Requirements[0].Date)
	assert.Equal(t, 1, got.Requirements[0].Count)

	assert.Equal(t, "s1", got.Absences[0].StaffID)
	assert.Equal(t, []string{"2026-08-11"}, got.Holidays)

	assert.Equal(t, 2026, got.Year)
	assert.Equal(t, 8, got.Month)
	assert.Equal(t, 2, *got.AdditionalDays)

	assert.Equal(t, int64(7), got.RandomSeed)
	assert.Equal(t, 15.0, got.TimeLimitSeconds)
}

func TestToEngineInputNilAdditionalDays(t *testing.T) {
	req := dtos.GenerateScheduleRequest{
		Staff: []dtos.StaffRequest{{ID: "s1", Name: "A"}},
		Tasks: []dtos.TaskRequest{{ID: "t1", Name: "清掃"}},
	}
	got := toEngineInput(req, &config.AppConfig{})
	assert.Nil(t, got.AdditionalDays)
}

func TestFromEngineResultRoundTrip(t *testing.T) {
	result := &engine.Result{
		ByDate: map[string][]engine.Assignment{
			"2026-08-01": {{StaffID: "s1", StaffName: "山田", TaskID: "t1", TaskName: "日勤看護", IsNurse: true}},
		},
		ByStaff: []engine.StaffSchedule{
			{StaffID: "s1", StaffName: "山田", Shifts: map[string]string{"2026-08-01": "日勤看護"}},
		},
	}

	got := fromEngineResult(result)

	assert.Len(t, got.ByDate["2026-08-01"], 1)
	assert.Equal(t, "日勤看護", got.ByDate["2026-08-01"][0].TaskName)
	assert.True(t, got.ByDate["2026-08-01"][0].IsNurse)

	staffRow := got.ByStaff[0]
	assert.Equal(t, "s1", staffRow.StaffID)
	assert.Equal(t, "日勤看護", staffRow.Shifts["2026-08-01"])
}

func TestToResponseBundlesPathAndResult(t *testing.T) {
	result := &engine.Result{ByDate: map[string][]engine.Assignment{}, ByStaff: []engine.StaffSchedule{}}
	resp := ToResponse(result, "/tmp/out/shift_2026_8_120000000001.xlsx")

	assert.Equal(t, "/tmp/out/shift_2026_8_120000000001.xlsx", resp.SpreadsheetPath)
	assert.Empty(t, resp.StructuredResult.ByStaff)
}
