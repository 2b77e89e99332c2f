/*
Package export - Shift Workbook Export

==============================================================================
FILE: internal/export/excel_exporter.go
==============================================================================

DESCRIPTION:
    Renders a solved schedule as an xlsx workbook: one sheet, a header row of
    dates, one body row per staff member, built cell by cell with named
    style handles for header, name, body, and empty-day cells.
*/
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	appErrors "github.com/caretech/shiftplan/internal/errors"
	"github.com/caretech/shiftplan/internal/engine"
)

const (
	headerRowHeight = 28
	bodyRowHeight   = 20
	nameColWidth    = 14
	dayColWidth     = 8
)

// ExportShiftWorkbook renders result into a dated xlsx file under outputDir
// and returns the written file's path.
func ExportShiftWorkbook(result *engine.Result, cal *engine.Calendar, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrExportFailed.WithMessage("failed to create output directory"))
	}

	f := excelize.NewFile()
	sheet := fmt.Sprintf("%d月シフト", cal.Month)
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrExportFailed.WithMessage("failed to build header style"))
	}
	nameStyle, err := newNameStyle(f)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrExportFailed.WithMessage("failed to build name-column style"))
	}
	bodyStyle, err := newBodyStyle(f)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrExportFailed.WithMessage("failed to build body style"))
	}
	emptyStyle, err := newEmptyStyle(f)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrExportFailed.WithMessage("failed to build empty-cell style"))
	}

	f.SetCellValue(sheet, "A1", "氏名 \\ 日付")
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)
	f.SetColWidth(sheet, "A", "A", nameColWidth)
	f.SetRowHeight(sheet, 1, headerRowHeight)

	for _, d := range cal.Days() {
		col, _ := excelize.CoordinatesToCellName(d+1, 1)
		letter, _, _ := excelize.SplitCellName(col)
		f.SetColWidth(sheet, letter, letter, dayColWidth)
		label := fmt.Sprintf("%d日\n(%s)", d, cal.WeekdayKanji(d))
		f.SetCellValue(sheet, col, label)
		f.SetCellStyle(sheet, col, col, headerStyle)
	}

	for i, staffSched := range result.ByStaff {
		row := i + 2
		f.SetRowHeight(sheet, row, bodyRowHeight)

		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, nameCell, staffSched.StaffName)
		f.SetCellStyle(sheet, nameCell, nameCell, nameStyle)

		for _, d := range cal.Days() {
			cell, _ := excelize.CoordinatesToCellName(d+1, row)
			task := staffSched.Shifts[cal.DateString(d)]
			if task == "" {
				f.SetCellValue(sheet, cell, "休")
				f.SetCellStyle(sheet, cell, cell, emptyStyle)
				continue
			}
			f.SetCellValue(sheet, cell, task)
			f.SetCellStyle(sheet, cell, cell, bodyStyle)
		}
	}

	path := filepath.Join(outputDir, fmt.Sprintf("shift_%d_%d_%s.xlsx", cal.Year, cal.Month, timestampSuffix()))
	if err := f.SaveAs(path); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrExportFailed.WithMessage("failed to write workbook"))
	}

	return path, nil
}

// timestampSuffix combines an HHMMSS clock reading with a six-digit
// microsecond tag, so two exports started within the same second get
// distinct names unless they also fall in the same microsecond.
func timestampSuffix() string {
	now := time.Now()
	return fmt.Sprintf("%s%06d", now.Format("150405"), now.Nanosecond()/1000)
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
}

func newNameStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DCE6F1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorder(),
	})
}

func newBodyStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
}

func newEmptyStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"F2F2F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
}

func thinBorder() []excelize.Border {
	sides := []string{"top", "bottom", "left", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "B7B7B7", Style: 1}
	}
	return borders
}
