package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/caretech/shiftplan/internal/engine"
)

func TestExportShiftWorkbookWritesExpectedCells(t *testing.T) {
	cal := engine.NewCalendar(2026, 8, nil)

	result := &engine.Result{
		ByStaff: []engine.StaffSchedule{
			{
				StaffID:   "s1",
				StaffName: "山田太郎",
				Shifts: map[string]string{
					"2026-08-01": "日勤看護",
					"2026-08-02": "",
				},
			},
		},
	}

	outDir := t.TempDir()
	path, err := ExportShiftWorkbook(result, cal, outDir)
	require.NoError(t, err)
	require.FileExists(t, path)
	assert.Equal(t, outDir, filepath.Dir(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := "8月シフト"
	v, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "氏名 \\ 日付", v)

	name, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "山田太郎", name)

	assigned, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "日勤看護", assigned)

	unassigned, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "休", unassigned)
}

func TestExportShiftWorkbookCreatesOutputDir(t *testing.T) {
	cal := engine.NewCalendar(2026, 1, nil)
	result := &engine.Result{ByStaff: []engine.StaffSchedule{}}

	base := t.TempDir()
	nested := filepath.Join(base, "nested", "output")

	_, err := os.Stat(nested)
	require.True(t, os.IsNotExist(err))

	path, err := ExportShiftWorkbook(result, cal, nested)
	require.NoError(t, err)
	require.FileExists(t, path)
}

func TestExportShiftWorkbookFilenamePattern(t *testing.T) {
	cal := engine.NewCalendar(2026, 8, nil)
	result := &engine.Result{ByStaff: []engine.StaffSchedule{}}

	outDir := t.TempDir()
	path, err := ExportShiftWorkbook(result, cal, outDir)
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.Regexp(t, `^shift_2026_8_\d+\.xlsx$`, base)
}
