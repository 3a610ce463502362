// Package export renders a week plan as an Excel workbook for sending to a
// coach alongside (or instead of) the share message.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"lg/calorie-banking-go-api/internal/weekplan"
)

// Sheet names.
const (
	SheetWeek    = "Week"
	SheetMessage = "Message"
)

// Row layout of the Week sheet.
const (
	headerRow   = 3
	firstDayRow = headerRow + 1
	totalRow    = firstDayRow + weekplan.DaysPerWeek
	budgetRow   = totalRow + 1
	baselineRow = budgetRow + 2
)

var weekColumns = []string{
	"Day", "Protein (g)", "Carbs (g)", "Fat (g)",
	"Protein (cal)", "Carbs (cal)", "Fat (cal)", "Total (cal)", "Locked",
}

// WeekWorkbook builds a workbook with the per-day breakdown, the weekly total
// against budget and the baseline on one sheet, and the share message on
// another.
func WeekWorkbook(week weekplan.Week, baseline weekplan.Macros) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetWeek); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetMessage); err != nil {
		return nil, fmt.Errorf("create message sheet: %w", err)
	}

	if err := writeWeekSheet(f, week, baseline); err != nil {
		return nil, fmt.Errorf("week sheet: %w", err)
	}
	if err := writeMessageSheet(f, weekplan.ShareText(week)); err != nil {
		return nil, fmt.Errorf("message sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeWeekSheet(f *excelize.File, week weekplan.Week, baseline weekplan.Macros) error {
	sheet := SheetWeek

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	lockedStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FCE4D6"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Weekly macro plan"); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", "I1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "I1", titleStyle); err != nil {
		return err
	}
	if err := f.SetRowHeight(sheet, 1, 24); err != nil {
		return err
	}

	for i, name := range weekColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("I%d", headerRow), headerStyle); err != nil {
		return err
	}

	var sumP, sumC, sumF int
	for i, d := range week.Days {
		row := firstDayRow + i
		locked := ""
		if d.Locked {
			locked = "yes"
		}
		values := []any{
			d.Label, d.ProteinG, d.CarbsG, d.FatG,
			d.ProteinG * weekplan.ProteinCalsPerGram,
			d.CarbsG * weekplan.CarbCalsPerGram,
			d.FatG * weekplan.FatCalsPerGram,
			d.TotalCalories, locked,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		if d.Locked {
			if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), lockedStyle); err != nil {
				return err
			}
		}
		sumP += d.ProteinG
		sumC += d.CarbsG
		sumF += d.FatG
	}

	totals := []any{"Week", sumP, sumC, sumF, "", "", "", week.Total()}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", totalRow), &totals); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", budgetRow), "Budget"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("H%d", budgetRow), week.Budget); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("I%d", budgetRow), headerStyle); err != nil {
		return err
	}

	base := []any{"Baseline", baseline.ProteinG, baseline.CarbsG, baseline.FatG, "", "", "", baseline.Calories()}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", baselineRow), &base); err != nil {
		return err
	}

	widths := []struct {
		from, to string
		width    float64
	}{
		{"A", "A", 10},
		{"B", "H", 13},
		{"I", "I", 8},
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.from, w.to, w.width); err != nil {
			return err
		}
	}
	return nil
}

// writeMessageSheet puts the share message one line per row, so it can be
// copied straight out of column A.
func writeMessageSheet(f *excelize.File, text string) error {
	for i, line := range strings.Split(text, "\n") {
		if err := f.SetCellValue(SheetMessage, fmt.Sprintf("A%d", i+1), line); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetMessage, "A", "A", 60)
}
